package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateRatingCommandIsNotConstructed = errors.New(
	"CreateRatingCommand must be created via NewCreateRatingCommand constructor",
)

// CreateRatingCommand represents a customer's request to rate the
// restaurant or the courier of one of their delivered orders.
//
// Example:
//
//	cmd, err := commands.NewCreateRatingCommand(
//	    orderID, customerID, rating.RoleRestaurant, 5, "great pizza")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateRatingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	role       rating.SubjectRole
	score      int
	comment    string

	guard guard.ConstructorGuard
}

// NewCreateRatingCommand creates a command to rate an order's restaurant or
// courier. The score must lie within the rating scale; the comment is
// optional.
func NewCreateRatingCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	role rating.SubjectRole,
	score int,
	comment string,
) (CreateRatingCommand, error) {
	cmd := CreateRatingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRole(role),
		cmd.setScore(score),
	); err != nil {
		return CreateRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRatingCommand) Validate() error {
	return c.guard.Validate(ErrCreateRatingCommandIsNotConstructed)
}

// OrderID returns the order being rated.
func (c CreateRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the rating customer.
func (c CreateRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Role returns whether the restaurant or the courier is being rated.
func (c CreateRatingCommand) Role() rating.SubjectRole {
	return c.role
}

// Score returns the rating score.
func (c CreateRatingCommand) Score() int {
	return c.score
}

// Comment returns the optional free-text comment.
func (c CreateRatingCommand) Comment() string {
	return c.comment
}

func (c *CreateRatingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateRatingCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateRatingCommand) setRole(role rating.SubjectRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *CreateRatingCommand) setScore(score int) error {
	if score < rating.MinScore || score > rating.MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, rating.MinScore, rating.MaxScore)
	}

	c.score = score
	return nil
}
