package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkAssignmentDeliveredCommandIsNotConstructed = errors.New(
	"MarkAssignmentDeliveredCommand must be created via NewMarkAssignmentDeliveredCommand constructor",
)

// MarkAssignmentDeliveredCommand records that the courier has handed the
// order to the customer. Delivery completes both the assignment and the
// order.
type MarkAssignmentDeliveredCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAssignmentDeliveredCommand creates a command to mark an assignment
// as delivered.
func NewMarkAssignmentDeliveredCommand(assignmentID kernel.UUID) (MarkAssignmentDeliveredCommand, error) {
	cmd := MarkAssignmentDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return MarkAssignmentDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAssignmentDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkAssignmentDeliveredCommandIsNotConstructed)
}

// AssignmentID returns the assignment to update.
func (c MarkAssignmentDeliveredCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *MarkAssignmentDeliveredCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}
