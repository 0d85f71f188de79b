package storage

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"recibozap/internal/usecase/interfaces"
)

// LocalStore writes rendered PDFs to a directory on disk. The directory comes
// from RECEIPTS_DIR (default ./receipts) and is created on startup.
type LocalStore struct {
	dir string
}

var _ interfaces.IReceiptFileStore = (*LocalStore)(nil)

func NewLocalStore() (*LocalStore, error) {
	dir := os.Getenv("RECEIPTS_DIR")
	if dir == "" {
		dir = "receipts"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipts dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, receiptID string, pdf []byte) (string, error) {
	filename := receiptFilename(receiptID)
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write receipt file %s: %w", path, err)
	}
	log.Printf("[storage][local] saved receipt file path=%s size=%d", path, len(pdf))
	return filename, nil
}

func (s *LocalStore) Open(_ context.Context, receiptID string) ([]byte, string, error) {
	filename := receiptFilename(receiptID)
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", interfaces.ErrReceiptFileNotFound
		}
		return nil, "", fmt.Errorf("read receipt file %s: %w", filename, err)
	}
	return data, filename, nil
}

func receiptFilename(receiptID string) string {
	return fmt.Sprintf("recibo_%s.pdf", receiptID)
}
