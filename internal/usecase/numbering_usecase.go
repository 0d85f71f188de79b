package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"recibozap/internal/usecase/interfaces"
)

// INumberingUseCase produces the human-facing NNN/YYYY receipt sequence.

type INumberingUseCase interface {
	Next(ctx context.Context, phone string) string
}

// NumberingUseCase counts per (user, calendar year), starting at 001 each new
// year. The increment is a storage-layer atomic add, so two concurrent calls
// for the same user never see the same value.
type NumberingUseCase struct {
	repo interfaces.IUserRepository
	now  func() time.Time
}

var _ INumberingUseCase = (*NumberingUseCase)(nil)

func NewNumberingUseCase(repo interfaces.IUserRepository) *NumberingUseCase {
	return &NumberingUseCase{repo: repo, now: time.Now}
}

// Next never fails: numbering is a usability nicety, not the receipt's unique
// key. On a counter-store failure it falls back to a timestamp-derived value.
func (n *NumberingUseCase) Next(ctx context.Context, phone string) string {
	now := n.now()
	year := now.Year()

	count, err := n.repo.IncrementYearCounter(ctx, NormalizePhone(phone), year)
	if err != nil {
		log.Printf("[numbering][usecase] counter increment failed phone=%s year=%d err=%v", phone, year, err)
		millis := fmt.Sprintf("%d", now.UnixMilli())
		return fmt.Sprintf("%s/%d", millis[len(millis)-6:], year)
	}
	return fmt.Sprintf("%03d/%d", count, year)
}
