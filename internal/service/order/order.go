package order

import (
	"context"
	"fmt"
	"io"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Order struct {
	log             logger.Logger
	repository      Repository
	addressStore    AddressStore
	productStore    ProductStore
	rateLookup      RateLookup
	courierRegistry CourierRegistry
	imageStore      ImageStore
	events          EventPublisher
	txManager       TxManager
}

func New(
	log logger.Logger,
	repository Repository,
	addressStore AddressStore,
	productStore ProductStore,
	rateLookup RateLookup,
	courierRegistry CourierRegistry,
	imageStore ImageStore,
	events EventPublisher,
	txManager TxManager,
) *Order {
	return &Order{
		log:             log,
		repository:      repository,
		addressStore:    addressStore,
		productStore:    productStore,
		rateLookup:      rateLookup,
		courierRegistry: courierRegistry,
		imageStore:      imageStore,
		events:          events,
		txManager:       txManager,
	}
}

// CreateOrder places a new order in pending/unpaid state. Item prices are
// snapshotted from the product store and the shipping cost comes from the
// rate table; any money figures submitted by the client are ignored.
func (s *Order) CreateOrder(ctx context.Context, customerID int64, draft entities.OrderDraft) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		address, err := s.addressStore.GetByID(ctx, draft.AddressID)
		if err != nil {
			return fmt.Errorf("resolve address: %w", err)
		}
		if address.UserID != customerID {
			return ErrNotAddressOwner
		}

		items := make([]entities.OrderItem, 0, len(draft.Items))
		var subtotal int64
		for _, draftItem := range draft.Items {
			product, err := s.productStore.GetByID(ctx, draftItem.ProductID)
			if err != nil {
				return fmt.Errorf("resolve product %d: %w", draftItem.ProductID, err)
			}
			items = append(items, entities.OrderItem{
				ProductID: product.ID,
				Quantity:  draftItem.Quantity,
				Price:     product.Price,
			})
			subtotal += product.Price * int64(draftItem.Quantity)
		}

		shippingCost, err := s.rateLookup.RateFor(ctx, address.DistrictCode)
		if err != nil {
			return fmt.Errorf("shipping rate for %s: %w", address.DistrictCode, err)
		}

		orderEntity := entities.Order{
			CustomerID:      customerID,
			CustomerName:    address.RecipientName,
			ShippingAddress: fmt.Sprintf("%s (%s) - %s", address.FullAddress, address.Label, address.PhoneNumber),
			RegionCode:      address.DistrictCode,
			Subtotal:        subtotal,
			ShippingCost:    shippingCost,
			GrandTotal:      subtotal + shippingCost,
			PaymentMethod:   draft.PaymentMethod,
			PaymentStatus:   entities.PaymentUnpaid,
			Status:          entities.OrderPending,
			Items:           items,
		}

		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	OrdersCreatedTotal.WithLabelValues(created.PaymentMethod.String()).Inc()
	return created, nil
}

// TransitionOrder moves an order through the lifecycle state machine. The
// whole transition, including courier availability side effects, runs inside
// one transaction against a row-locked order.
func (s *Order) TransitionOrder(ctx context.Context, orderID int64, target entities.OrderStatusType, courierID *int64) (*entities.Order, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		updated, err = s.transitionLocked(ctx, orderEntity, target, courierID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, updated)
	return updated, nil
}

// CompleteDelivery is the courier-facing completion shortcut. Only the
// assigned courier may call it, and only while the order is on delivery.
func (s *Order) CompleteDelivery(ctx context.Context, orderID, courierID int64) (*entities.Order, error) {
	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.CourierID == nil || *orderEntity.CourierID != courierID {
			return ErrNotAssignedCourier
		}
		if orderEntity.Status != entities.OrderOnDelivery {
			return ErrNotOnDelivery
		}

		updated, err = s.transitionLocked(ctx, orderEntity, entities.OrderCompleted, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, updated)
	return updated, nil
}

// transitionLocked applies one state-machine step to an order already locked
// in the ambient transaction.
func (s *Order) transitionLocked(ctx context.Context, orderEntity *entities.Order, target entities.OrderStatusType, courierID *int64) (*entities.Order, error) {
	if orderEntity.Status.IsTerminal() {
		return nil, ErrOrderFinalized
	}
	if !orderEntity.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, orderEntity.Status, target)
	}

	orderModify := entities.OrderModify{
		ID:     &orderEntity.ID,
		Status: &target,
	}

	switch target {
	case entities.OrderProcessing:
		// QR transfer orders are confirmed paid at the dispatch gate.
		if orderEntity.PaymentMethod == entities.PaymentQRTransfer && orderEntity.PaymentStatus != entities.PaymentPaid {
			paid := entities.PaymentPaid
			orderModify.PaymentStatus = &paid
		}

	case entities.OrderOnDelivery:
		if courierID == nil {
			return nil, ErrCourierRequired
		}
		// Availability check and markBusy share the order's transaction,
		// so concurrent assignments of the same courier serialize here.
		available, err := s.courierRegistry.IsAvailable(ctx, *courierID)
		if err != nil {
			return nil, fmt.Errorf("check courier availability: %w", err)
		}
		if !available {
			return nil, ErrCourierBusy
		}
		if err := s.courierRegistry.MarkBusy(ctx, *courierID); err != nil {
			return nil, fmt.Errorf("mark courier busy: %w", err)
		}
		orderModify.CourierID = courierID

	case entities.OrderCompleted:
		if orderEntity.CourierID != nil {
			if err := s.courierRegistry.MarkAvailable(ctx, *orderEntity.CourierID); err != nil {
				return nil, fmt.Errorf("release courier: %w", err)
			}
		}
		// Cash orders are only paid once the goods are handed over.
		if orderEntity.PaymentMethod == entities.PaymentCashOnDelivery && orderEntity.PaymentStatus != entities.PaymentPaid {
			paid := entities.PaymentPaid
			orderModify.PaymentStatus = &paid
		}

	case entities.OrderCancelled:
		if orderEntity.CourierID != nil {
			if err := s.courierRegistry.MarkAvailable(ctx, *orderEntity.CourierID); err != nil {
				return nil, fmt.Errorf("release courier: %w", err)
			}
		}
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	OrderTransitionsTotal.WithLabelValues(orderEntity.Status.String(), target.String()).Inc()
	return updated, nil
}

// UploadPaymentProof stores the proof image reference on the order, replacing
// any previous one. It deliberately leaves payment status untouched; payment
// confirmation happens through the processing transition.
func (s *Order) UploadPaymentProof(ctx context.Context, orderID, customerID int64, filename string, content io.Reader) (*entities.Order, error) {
	if content == nil {
		return nil, ErrMissingProof
	}

	var updated *entities.Order
	var previous *string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.CustomerID != customerID {
			return ErrNotOrderOwner
		}
		previous = orderEntity.PaymentProof

		reference, err := s.imageStore.Store(ctx, orderID, filename, content)
		if err != nil {
			return fmt.Errorf("store payment proof: %w", err)
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:           &orderEntity.ID,
			PaymentProof: &reference,
		})
		if err != nil {
			if removeErr := s.imageStore.Remove(ctx, reference); removeErr != nil {
				s.log.Warn("remove unreferenced payment proof",
				logger.NewField("reference", reference),
				logger.NewField("error", removeErr))
			}
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != nil {
		if err := s.imageStore.Remove(ctx, *previous); err != nil {
			s.log.Warn("remove replaced payment proof",
				logger.NewField("reference", *previous),
				logger.NewField("error", err))
		}
	}
	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderListFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListCourierAssignments returns the courier's deliveries: active means
// currently on delivery, history means completed.
func (s *Order) ListCourierAssignments(ctx context.Context, courierID int64, listType entities.OrderListType) ([]entities.Order, error) {
	filter := entities.OrderListFilter{CourierID: &courierID}

	switch listType {
	case entities.OrderListActive:
		status := entities.OrderOnDelivery
		filter.Status = &status
	case entities.OrderListHistory:
		status := entities.OrderCompleted
		filter.Status = &status
	case entities.OrderListAll:
	default:
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return orders, nil
}

func (s *Order) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	return counts, nil
}

func (s *Order) publishStatusChanged(ctx context.Context, orderEntity *entities.Order) {
	if s.events == nil || orderEntity == nil {
		return
	}
	if err := s.events.PublishStatusChanged(ctx, orderEntity); err != nil {
		s.log.With(
			logger.NewField("order_id", orderEntity.ID),
			logger.NewField("status", orderEntity.Status.String()),
			logger.NewField("error", err),
		).Error("publish order status event")
	}
}
