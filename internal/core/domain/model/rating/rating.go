package rating

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	// MinScore is the lowest allowed rating score.
	MinScore = 1
	// MaxScore is the highest allowed rating score.
	MaxScore = 5
)

// ErrRatingIsNotConstructed is returned when a Rating was not created through
// NewRating or RestoreRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is one customer's score for one subject of one delivered order.
//
// Invariants enforced across the dispatch and rating flows:
//   - exactly one rating per (order, role) pair
//   - the referenced order must be Delivered and belong to the rater
//
// The aggregate itself enforces the local rules: a valid subject role and an
// integer score in [MinScore, MaxScore]. The cross-entity eligibility checks
// live in the application layer, which reads the persisted order history.
type Rating struct {
	id         kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	subjectID  kernel.UUID
	role       SubjectRole

	score     int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewRating creates a rating with a server-assigned creation timestamp.
// The comment is optional; the score must lie in [MinScore, MaxScore].
func NewRating(
	id, orderID, customerID, subjectID kernel.UUID,
	role SubjectRole,
	score int,
	comment string,
) (*Rating, error) {
	r := &Rating{
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setSubjectID(subjectID),
		r.setRole(role),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a rating from persistence.
func RestoreRating(
	id, orderID, customerID, subjectID kernel.UUID,
	role SubjectRole,
	score int,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	r, err := NewRating(id, orderID, customerID, subjectID, role, score, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Rating was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order's identifier.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the rater's identifier.
func (r *Rating) CustomerID() kernel.UUID {
	return r.customerID
}

// SubjectID returns the rated subject's identifier.
func (r *Rating) SubjectID() kernel.UUID {
	return r.subjectID
}

// Role returns the subject role tag.
func (r *Rating) Role() SubjectRole {
	return r.role
}

// Score returns the integer score in [MinScore, MaxScore].
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the optional free-text comment.
func (r *Rating) Comment() string {
	return r.comment
}

// CreatedAt returns the creation timestamp.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	r.orderID = id
	return nil
}

func (r *Rating) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	r.customerID = id
	return nil
}

func (r *Rating) setSubjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("subjectId", err)
	}
	r.subjectID = id
	return nil
}

func (r *Rating) setRole(role SubjectRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	r.role = role
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < MinScore || score > MaxScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore)
	}
	r.score = score
	return nil
}
