package usecase

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotaExceeded    = errors.New("monthly receipt quota exceeded")
	ErrValidationFailed = errors.New("receipt draft validation failed")
	ErrRenderFailed     = errors.New("receipt rendering failed")
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrInvalidReceiptID = errors.New("invalid receipt id")
)

// GenerateResult carries the identifiers handed back to the delivery channel.
type GenerateResult struct {
	ReceiptID     string `json:"receipt_id"`
	ReceiptNumber string `json:"receipt_number"`
	Filename      string `json:"filename"`
	DownloadURL   string `json:"download_url"`
}

// IReceiptUseCase is the generation orchestrator plus receipt reads.

type IReceiptUseCase interface {
	Generate(ctx context.Context, phone string, draft entities.ReceiptDraft, via string) (GenerateResult, error)
	GetByID(ctx context.Context, id string) (entities.Receipt, error)
	Download(ctx context.Context, id string) ([]byte, string, error)
	ListByUserPhone(ctx context.Context, phone string, limit int) ([]entities.Receipt, error)
	Void(ctx context.Context, id string) (entities.Receipt, error)
}

type ReceiptUseCase struct {
	repo      interfaces.IReceiptRepository
	users     IUserUseCase
	numbering INumberingUseCase
	renderer  interfaces.IReceiptRenderer
	files     interfaces.IReceiptFileStore
	publicURL string
	now       func() time.Time
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(
	repo interfaces.IReceiptRepository,
	users IUserUseCase,
	numbering INumberingUseCase,
	renderer interfaces.IReceiptRenderer,
	files interfaces.IReceiptFileStore,
	publicURL string,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		repo:      repo,
		users:     users,
		numbering: numbering,
		renderer:  renderer,
		files:     files,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		now:       time.Now,
	}
}

// Generate runs the full pipeline: validate, re-check quota, number,
// categorize, hash, render, persist file and record, then register usage.
//
// The quota is re-checked here even though the conversation already did, to
// close the race between confirmation and generation. Usage is registered only
// after the receipt record persists, so a failed generation never consumes
// quota. Any failure before rendering aborts without touching the renderer.
func (u *ReceiptUseCase) Generate(ctx context.Context, phone string, draft entities.ReceiptDraft, via string) (GenerateResult, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return GenerateResult{}, ErrInvalidPhone
	}

	amount, err := validateDraft(draft)
	if err != nil {
		return GenerateResult{}, err
	}

	can, err := u.users.CanGenerateReceipt(ctx, phone)
	if err != nil {
		return GenerateResult{}, err
	}
	if !can {
		return GenerateResult{}, ErrQuotaExceeded
	}

	number := u.numbering.Next(ctx, phone)
	now := u.now().UTC()

	receipt := entities.Receipt{
		ID:                 uuid.NewString(),
		UserPhone:          phone,
		Number:             number,
		ClientName:         strings.TrimSpace(draft.ClientName),
		ClientDocument:     strings.TrimSpace(draft.ClientDocument),
		ServiceName:        strings.TrimSpace(draft.ServiceName),
		ServiceDescription: strings.TrimSpace(draft.ServiceDescription),
		Amount:             amount,
		Currency:           "BRL",
		ServiceDate:        strings.TrimSpace(draft.Date),
		Category:           CategorizeService(draft.ServiceName),
		Status:             entities.ReceiptStatusActive,
		GeneratedVia:       via,
		DocumentHash:       DocumentHash(draft.ClientName, draft.ClientDocument, draft.ServiceName, draft.Amount, draft.Date),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	pdf, err := u.renderer.Render(ctx, receipt)
	if err != nil {
		log.Printf("[receipt][usecase] render failed phone=%s receipt_id=%s err=%v", phone, receipt.ID, err)
		return GenerateResult{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	filename, err := u.files.Save(ctx, receipt.ID, pdf)
	if err != nil {
		log.Printf("[receipt][usecase] file save failed phone=%s receipt_id=%s err=%v", phone, receipt.ID, err)
		return GenerateResult{}, err
	}
	receipt.Filename = filename

	created, err := u.repo.Create(ctx, receipt)
	if err != nil {
		log.Printf("[receipt][usecase] record create failed phone=%s receipt_id=%s err=%v", phone, receipt.ID, err)
		return GenerateResult{}, err
	}

	// Commit order: record first, usage after. A usage write failure after a
	// persisted receipt undercounts quota for this month, which is the safe
	// direction; log and carry on.
	if err := u.users.RegisterGeneration(ctx, phone, created.ID); err != nil {
		log.Printf("[receipt][usecase] usage register failed phone=%s receipt_id=%s err=%v", phone, created.ID, err)
	}

	log.Printf("[receipt][usecase] generated phone=%s receipt_id=%s number=%s category=%s", phone, created.ID, created.Number, created.Category)
	return GenerateResult{
		ReceiptID:     created.ID,
		ReceiptNumber: created.Number,
		Filename:      created.Filename,
		DownloadURL:   u.publicURL + "/api/receipts/download/" + created.ID,
	}, nil
}

func (u *ReceiptUseCase) GetByID(ctx context.Context, id string) (entities.Receipt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receipt{}, ErrInvalidReceiptID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Receipt{}, err
	}
	if r.ID == "" {
		return entities.Receipt{}, ErrReceiptNotFound
	}
	return r, nil
}

// Download returns the stored PDF bytes and filename.
func (u *ReceiptUseCase) Download(ctx context.Context, id string) ([]byte, string, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return u.files.Open(ctx, r.ID)
}

func (u *ReceiptUseCase) ListByUserPhone(ctx context.Context, phone string, limit int) ([]entities.Receipt, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}
	if limit <= 0 {
		limit = 20
	}
	return u.repo.ListByUserPhone(ctx, phone, limit)
}

// Void flips a receipt to the void status, the only mutation a receipt allows.
func (u *ReceiptUseCase) Void(ctx context.Context, id string) (entities.Receipt, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Receipt{}, ErrInvalidReceiptID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.ReceiptStatusVoid)
	if err != nil {
		return entities.Receipt{}, err
	}
	if updated.ID == "" {
		return entities.Receipt{}, ErrReceiptNotFound
	}
	return updated, nil
}

func validateDraft(d entities.ReceiptDraft) (float64, error) {
	for field, v := range map[string]string{
		"client_name":     d.ClientName,
		"client_document": d.ClientDocument,
		"service_name":    d.ServiceName,
		"date":            d.Date,
	} {
		if strings.TrimSpace(v) == "" {
			return 0, fmt.Errorf("%w: missing %s", ErrValidationFailed, field)
		}
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(d.Amount, ",", "."), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidationFailed, d.Amount)
	}
	return amount, nil
}

// ParseAmount accepts comma-or-dot decimal separators and returns the value as
// a fixed 2-decimal-place string. Values that fail to parse, are not positive
// or are not finite are rejected. Thousands separators are not handled.
func ParseAmount(input string) (string, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(input), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return "", fmt.Errorf("%w: invalid amount %q", ErrValidationFailed, input)
	}
	return strconv.FormatFloat(v, 'f', 2, 64), nil
}

// DocumentHash fingerprints the receipt content for tamper evidence: sha256 of
// the concatenated fields, first 16 hex chars, uppercased.
func DocumentHash(clientName, clientDocument, serviceName, amount, date string) string {
	content := clientName + clientDocument + serviceName + amount + date
	sum := sha256.Sum256([]byte(content))
	return strings.ToUpper(fmt.Sprintf("%x", sum)[:16])
}
