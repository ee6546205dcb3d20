package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkAssignmentPickedUpCommandIsNotConstructed = errors.New(
	"MarkAssignmentPickedUpCommand must be created via NewMarkAssignmentPickedUpCommand constructor",
)

// MarkAssignmentPickedUpCommand records that the courier has collected the
// order from the restaurant.
type MarkAssignmentPickedUpCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAssignmentPickedUpCommand creates a command to mark an assignment
// as picked up.
func NewMarkAssignmentPickedUpCommand(assignmentID kernel.UUID) (MarkAssignmentPickedUpCommand, error) {
	cmd := MarkAssignmentPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return MarkAssignmentPickedUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAssignmentPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkAssignmentPickedUpCommandIsNotConstructed)
}

// AssignmentID returns the assignment to update.
func (c MarkAssignmentPickedUpCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *MarkAssignmentPickedUpCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}
