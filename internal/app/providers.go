package app

import (
	"context"
	"time"

	"marketplace/internal/gateway/imagestore"
	"marketplace/internal/handlers/rest/couriers_get"
	"marketplace/internal/handlers/rest/deliveries_get"
	"marketplace/internal/handlers/rest/delivery_complete_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_payment_proof_post"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/tasks/orders_metrics"
	"marketplace/internal/pkg/config"

	addressRepo "marketplace/internal/repository/address"
	courierRepo "marketplace/internal/repository/courier"
	orderRepo "marketplace/internal/repository/order"
	productRepo "marketplace/internal/repository/product"
	shippingRateRepo "marketplace/internal/repository/shippingrate"
	courierService "marketplace/internal/service/courier"
	orderService "marketplace/internal/service/order"
	shippingService "marketplace/internal/service/shipping"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	MetricsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceCourier    ServiceCourier
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_status_put.Service
	order_payment_proof_post.Service
	deliveries_get.Service
	delivery_complete_post.Service
}

type ServiceCourier interface {
	couriers_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideShippingRateRepository(querier *querier.Querier) *shippingRateRepo.Repository {
	return shippingRateRepo.New(querier)
}

func provideImageStore(cfg *config.Config) (*imagestore.Store, error) {
	return imagestore.New(cfg.Uploads.Dir)
}

func provideServiceShipping(
	repository shippingService.Repository,
	cfg *config.Config,
) *shippingService.Shipping {
	return shippingService.New(repository, cfg.Shipping.DefaultRate)
}

func provideServiceCourier(repository courierService.Repository) *courierService.Courier {
	return courierService.New(repository)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	addressStore orderService.AddressStore,
	productStore orderService.ProductStore,
	rateLookup orderService.RateLookup,
	courierRegistry orderService.CourierRegistry,
	imageStore orderService.ImageStore,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		log,
		repository,
		addressStore,
		productStore,
		rateLookup,
		courierRegistry,
		imageStore,
		events,
		txManager,
	)
}

func provideMetricsInterval(cfg *config.Config) MetricsInterval {
	return MetricsInterval(cfg.Tasks.OrdersMetricsInterval)
}

func provideOrdersMetricsTask(
	orderSvc orders_metrics.Service,
	interval MetricsInterval,
) *orders_metrics.OrdersMetrics {
	return orders_metrics.New(orderSvc, time.Duration(interval))
}

func provideTaskList(
	ordersMetricsTask *orders_metrics.OrdersMetrics,
) []background.Task {
	return []background.Task{
		ordersMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
