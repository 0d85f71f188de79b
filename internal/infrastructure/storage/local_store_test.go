package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recibozap/internal/usecase/interfaces"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	t.Setenv("RECEIPTS_DIR", t.TempDir())

	store, err := NewLocalStore()
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	filename, err := store.Save(context.Background(), "r-1", []byte("%PDF-1.3 data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filename != "recibo_r-1.pdf" {
		t.Fatalf("unexpected filename %s", filename)
	}

	data, opened, err := store.Open(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened != filename || !bytes.Equal(data, []byte("%PDF-1.3 data")) {
		t.Fatalf("unexpected read %s %q", opened, data)
	}
}

func TestLocalStore_OpenMissing(t *testing.T) {
	t.Setenv("RECEIPTS_DIR", t.TempDir())

	store, err := NewLocalStore()
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	if _, _, err := store.Open(context.Background(), "r-404"); !errors.Is(err, interfaces.ErrReceiptFileNotFound) {
		t.Fatalf("expected ErrReceiptFileNotFound, got %v", err)
	}
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")
	t.Setenv("RECEIPTS_DIR", dir)

	if _, err := NewLocalStore(); err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected directory created: %v", err)
	}
}
