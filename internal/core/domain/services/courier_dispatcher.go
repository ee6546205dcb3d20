package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no courier is available for dispatch.
var ErrCourierNotFound = errors.New("courier not found")

// CourierDispatcher is a domain service selecting the optimal courier for an
// order. Selection ranks free couriers by great-circle distance from the
// courier's last reported position to the restaurant; couriers with unknown
// positions rank behind every courier with a known one.
//
// Example:
//
//	dispatcher := services.NewCourierDispatcher()
//	chosen, err := dispatcher.Dispatch(o, restaurantLocation, freeCouriers)
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // all couriers are busy
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a CourierDispatcher.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch picks the best courier for the order.
//
// The order must be properly constructed and not in a terminal state; pickup
// happens at the given restaurant location, which may be nil when the
// restaurant has no stored coordinates (every courier then ranks by the
// unknown-distance sentinel and the first free one wins).
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	pickupLocation *kernel.GeoPoint,
	couriers []*courier.Courier,
) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status().IsTerminal() {
		return nil, ErrCourierNotFound
	}

	var (
		best     *courier.Courier
		bestDist float64
		haveBest bool
	)

	for _, c := range couriers {
		if c == nil {
			continue
		}

		dist := kernel.DistanceKm(c.Location, pickupLocation)
		if !haveBest {
			best, bestDist, haveBest = c, dist, true
			continue
		}
		if closer(dist, bestDist) {
			best, bestDist = c, dist
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}
	return best, nil
}

// closer ranks a candidate distance against the current best, treating the
// unknown sentinel as worse than any real distance.
func closer(candidate, best float64) bool {
	if candidate == kernel.UnknownDistance {
		return false
	}
	if best == kernel.UnknownDistance {
		return true
	}
	return candidate < best
}
