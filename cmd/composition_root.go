package cmd

import (
	"log/slog"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	kafkaout "fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/addressrepo"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	redisout "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Handlers are built on demand
// and are cheap value types; the root owns the long-lived connections.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	restaurants ports.RestaurantReader
	couriers    ports.CourierReader
	addresses   ports.AddressReader

	publisher ports.OrderEventPublisher
	cache     ports.RatingCache

	dispatchSchedule string
	logger           *slog.Logger
}

// NewCompositionRoot builds the object graph from already-opened connections.
// The kafka writer may be nil; publishing then degrades to a no-op.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	kafkaWriter *kafka.Writer,
	logger *slog.Logger,
) CompositionRoot {
	root := CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		restaurants:      restaurantrepo.NewGormRestaurantReader(gormDB),
		couriers:         courierrepo.NewGormCourierReader(gormDB),
		addresses:        addressrepo.NewGormAddressReader(gormDB),
		dispatchSchedule: config.DispatchSchedule,
		logger:           logger,
	}

	if kafkaWriter != nil {
		root.publisher = kafkaout.NewOrderEventPublisher(kafkaWriter)
	}
	if redisClient != nil {
		ttl := time.Duration(config.RatingCacheTTLMin) * time.Minute
		root.cache = redisout.NewRatingCache(redisClient, ttl)
	}

	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.addresses, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.dispatchUoWFactory(), c.couriers)
}

func (c *CompositionRoot) CreateMarkAssignmentPickedUpCommandHandler() commands.MarkAssignmentPickedUpCommandHandler {
	return commands.NewMarkAssignmentPickedUpCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateMarkAssignmentDeliveredCommandHandler() commands.MarkAssignmentDeliveredCommandHandler {
	return commands.NewMarkAssignmentDeliveredCommandHandler(c.dispatchUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelAssignmentCommandHandler() commands.CancelAssignmentCommandHandler {
	return commands.NewCancelAssignmentCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateDispatchPendingOrderCommandHandler() commands.DispatchPendingOrderCommandHandler {
	return commands.NewDispatchPendingOrderCommandHandler(c.dispatchUoWFactory(), c.restaurants, c.couriers)
}

func (c *CompositionRoot) CreateCreateRatingCommandHandler() commands.CreateRatingCommandHandler {
	return commands.NewCreateRatingCommandHandler(
		c.ratingUoWFactory(), c.restaurants, c.couriers, c.cache, c.logger)
}

func (c *CompositionRoot) CreateSearchRestaurantsQueryHandler() queries.SearchRestaurantsQueryHandler {
	return queries.NewSearchRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAverageRatingQueryHandler() queries.GetAverageRatingQueryHandler {
	return queries.NewGetAverageRatingQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateCanRateQueryHandler() queries.CanRateQueryHandler {
	return queries.NewCanRateQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateMarkAssignmentPickedUpCommandHandler(),
		c.CreateMarkAssignmentDeliveredCommandHandler(),
		c.CreateCancelAssignmentCommandHandler(),
		c.CreateCreateRatingCommandHandler(),
		c.CreateSearchRestaurantsQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
		c.CreateGetAverageRatingQueryHandler(),
		c.CreateCanRateQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchPendingOrderCommandHandler(), c.dispatchSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
