package interfaces

import (
	"context"

	"recibozap/internal/domain/entities"
)

// IReceiptRenderer produces the signed PDF document for a receipt.
type IReceiptRenderer interface {
	Render(ctx context.Context, r entities.Receipt) ([]byte, error)
}
