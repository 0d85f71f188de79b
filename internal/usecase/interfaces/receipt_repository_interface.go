package interfaces

import (
	"context"

	"recibozap/internal/domain/entities"
)

// IReceiptRepository abstracts DynamoDB persistence for Receipt.

type IReceiptRepository interface {
	Create(ctx context.Context, r entities.Receipt) (entities.Receipt, error)
	GetByID(ctx context.Context, id string) (entities.Receipt, error)
	ListByUserPhone(ctx context.Context, phone string, limit int) ([]entities.Receipt, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error)
}
