//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_proof_post_test
package order_payment_proof_post

import (
	"context"
	"io"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UploadPaymentProof(ctx context.Context, orderID, customerID int64, filename string, content io.Reader) (*entities.Order, error)
}
