package commands

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/rating"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateRatingResult describes the rating that was recorded, including the
// resolved subject so callers can display "you rated <name>".
type CreateRatingResult struct {
	RatingID    kernel.UUID
	SubjectID   kernel.UUID
	SubjectName string
}

// CreateRatingCommandHandler records customer ratings for delivered orders.
// Eligibility rules: the caller must own the order, the order must be
// delivered, and each (order, role) pair may be rated exactly once. The
// subject is resolved from the order by role: the restaurant reference for
// restaurant ratings, the linked courier for courier ratings.
type CreateRatingCommandHandler struct {
	uowFactory  RatingUoWFactory
	restaurants ports.RestaurantReader
	couriers    ports.CourierReader
	cache       ports.RatingCache
	logger      *slog.Logger
}

// NewCreateRatingCommandHandler creates a handler for rating creation.
// The cache may be nil when no cache is configured.
func NewCreateRatingCommandHandler(
	uowFactory RatingUoWFactory,
	restaurants ports.RestaurantReader,
	couriers ports.CourierReader,
	cache ports.RatingCache,
	logger *slog.Logger,
) CreateRatingCommandHandler {
	return CreateRatingCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		couriers:    couriers,
		cache:       cache,
		logger:      ensureLogger(logger),
	}
}

// Handle processes the rating command.
// Checks eligibility, resolves the subject, persists the rating and drops
// the subject's cached average so the next read recomputes it.
func (h CreateRatingCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRatingCommand,
) (CreateRatingResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRatingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateRatingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ratingRepo := uow.RatingRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CreateRatingResult{}, err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return CreateRatingResult{}, errs.NewForbiddenError("order belongs to another customer")
	}
	if o.Status() != order.Delivered {
		return CreateRatingResult{}, errs.NewForbiddenError("order is not delivered")
	}

	_, err = ratingRepo.GetByOrderAndRole(ctx, o.ID(), cmd.Role())
	switch {
	case err == nil:
		return CreateRatingResult{}, errs.NewForbiddenError("order is already rated for this role")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return CreateRatingResult{}, err
	}

	subjectID, subjectName, err := h.resolveSubject(ctx, o, cmd.Role())
	if err != nil {
		return CreateRatingResult{}, err
	}

	newRating, err := rating.NewRating(
		kernel.NewUUID(), o.ID(), cmd.CustomerID(), subjectID, cmd.Role(), cmd.Score(), cmd.Comment())
	if err != nil {
		return CreateRatingResult{}, err
	}

	if err = ratingRepo.Add(ctx, newRating); err != nil {
		return CreateRatingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateRatingResult{}, err
	}

	h.invalidateAverage(ctx, subjectID, cmd.Role())

	return CreateRatingResult{
		RatingID:    newRating.ID(),
		SubjectID:   subjectID,
		SubjectName: subjectName,
	}, nil
}

// resolveSubject maps the rated role to the concrete subject of the order.
func (h CreateRatingCommandHandler) resolveSubject(
	ctx context.Context,
	o *order.Order,
	role rating.SubjectRole,
) (kernel.UUID, string, error) {
	switch role {
	case rating.RoleRestaurant:
		restaurant, err := h.restaurants.Get(ctx, o.RestaurantID())
		if err != nil {
			return kernel.UUID{}, "", err
		}
		return restaurant.ID, restaurant.Name, nil

	case rating.RoleCourier:
		courierID := o.Courier()
		if courierID == nil {
			return kernel.UUID{}, "", errs.NewValueIsInvalidError("role")
		}
		courier, err := h.couriers.Get(ctx, *courierID)
		if err != nil {
			return kernel.UUID{}, "", err
		}
		return courier.ID, courier.Name, nil

	default:
		return kernel.UUID{}, "", errs.NewValueIsInvalidError("role")
	}
}

// invalidateAverage drops the cached average, best-effort. A cache outage
// only means the average stays stale until the entry's TTL expires.
func (h CreateRatingCommandHandler) invalidateAverage(
	ctx context.Context,
	subjectID kernel.UUID,
	role rating.SubjectRole,
) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, subjectID, role); err != nil {
		h.logger.Warn("failed to invalidate cached rating average",
			slog.String("subject_id", subjectID.String()),
			slog.String("role", role.String()),
			slog.Any("error", err),
		)
	}
}
