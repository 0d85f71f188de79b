package interfaces

import (
	"context"
	"errors"
)

// ErrReceiptFileNotFound reports that no stored PDF exists for a receipt ID.
var ErrReceiptFileNotFound = errors.New("receipt file not found")

// IReceiptFileStore persists and serves rendered PDF documents by receipt ID.
type IReceiptFileStore interface {
	Save(ctx context.Context, receiptID string, pdf []byte) (filename string, err error)
	Open(ctx context.Context, receiptID string) ([]byte, string, error)
}
