//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"marketplace/internal/gateway/imagestore"
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

	"marketplace/pkg/logger"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication wires the HTTP service (cmd/service). The event
// publisher is built in main because Kafka is optional.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	events orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMetricsInterval,

		provideOrderRepository,
		provideCourierRepository,
		provideAddressRepository,
		provideProductRepository,
		provideShippingRateRepository,
		provideImageStore,

		provideServiceOrder,
		provideServiceCourier,
		provideServiceShipping,

		provideOrdersMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AddressStore), new(*addressRepo.Repository)),
		wire.Bind(new(orderService.ProductStore), new(*productRepo.Repository)),
		wire.Bind(new(orderService.RateLookup), new(*shippingService.Shipping)),
		wire.Bind(new(orderService.CourierRegistry), new(*courierService.Courier)),
		wire.Bind(new(orderService.ImageStore), new(*imagestore.Store)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(shippingService.Repository), new(*shippingRateRepo.Repository)),

		wire.Bind(new(orders_metrics.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}
