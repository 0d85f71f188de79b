package usecase

import (
	"context"
	"sort"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"
)

// Analytics are computed on read from the receipts table; nothing here keeps a
// separate aggregate document in sync.

const analyticsScanLimit = 1000

// ServiceBreakdown is one grouped row of a report or dashboard chart.
type ServiceBreakdown struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type DashboardSummary struct {
	TotalReceipts     int     `json:"total_receipts"`
	TotalAmount       float64 `json:"total_amount"`
	AvgReceiptValue   float64 `json:"avg_receipt_value"`
	ThisMonthReceipts int     `json:"this_month_receipts"`
	ThisMonthAmount   float64 `json:"this_month_amount"`
}

type Dashboard struct {
	Summary        DashboardSummary   `json:"summary"`
	TopServices    []ServiceBreakdown `json:"top_services"`
	TopClients     []ServiceBreakdown `json:"top_clients"`
	RecentActivity []entities.Receipt `json:"recent_activity"`
}

type FinancialReport struct {
	Start     time.Time          `json:"start,omitzero"`
	End       time.Time          `json:"end,omitzero"`
	Summary   DashboardSummary   `json:"summary"`
	ByService []ServiceBreakdown `json:"by_service"`
	ByClient  []ServiceBreakdown `json:"by_client"`
}

type IAnalyticsUseCase interface {
	GetUserDashboard(ctx context.Context, phone string) (Dashboard, error)
	GetFinancialReport(ctx context.Context, phone string, start, end time.Time) (FinancialReport, error)
}

type AnalyticsUseCase struct {
	receipts interfaces.IReceiptRepository
	users    interfaces.IUserRepository
	now      func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(receipts interfaces.IReceiptRepository, users interfaces.IUserRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{receipts: receipts, users: users, now: time.Now}
}

func (a *AnalyticsUseCase) GetUserDashboard(ctx context.Context, phone string) (Dashboard, error) {
	phone = NormalizePhone(phone)
	user, err := a.users.GetByPhone(ctx, phone)
	if err != nil {
		return Dashboard{}, err
	}
	if user.Phone == "" {
		return Dashboard{}, ErrUserNotFound
	}

	receipts, err := a.receipts.ListByUserPhone(ctx, phone, analyticsScanLimit)
	if err != nil {
		return Dashboard{}, err
	}

	summary := summarize(receipts, startOfMonth(a.now()))
	recent := receipts
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return Dashboard{
		Summary:        summary,
		TopServices:    topN(groupBy(receipts, func(r entities.Receipt) string { return r.ServiceName }), 5),
		TopClients:     topN(groupBy(receipts, func(r entities.Receipt) string { return r.ClientName }), 5),
		RecentActivity: recent,
	}, nil
}

func (a *AnalyticsUseCase) GetFinancialReport(ctx context.Context, phone string, start, end time.Time) (FinancialReport, error) {
	phone = NormalizePhone(phone)
	user, err := a.users.GetByPhone(ctx, phone)
	if err != nil {
		return FinancialReport{}, err
	}
	if user.Phone == "" {
		return FinancialReport{}, ErrUserNotFound
	}

	all, err := a.receipts.ListByUserPhone(ctx, phone, analyticsScanLimit)
	if err != nil {
		return FinancialReport{}, err
	}

	receipts := all
	if !start.IsZero() && !end.IsZero() {
		receipts = receipts[:0:0]
		for _, r := range all {
			if !r.CreatedAt.Before(start) && !r.CreatedAt.After(end) {
				receipts = append(receipts, r)
			}
		}
	}

	return FinancialReport{
		Start:     start,
		End:       end,
		Summary:   summarize(receipts, startOfMonth(a.now())),
		ByService: topN(groupBy(receipts, func(r entities.Receipt) string { return r.ServiceName }), 0),
		ByClient:  topN(groupBy(receipts, func(r entities.Receipt) string { return r.ClientName }), 0),
	}, nil
}

func summarize(receipts []entities.Receipt, monthStart time.Time) DashboardSummary {
	s := DashboardSummary{TotalReceipts: len(receipts)}
	for _, r := range receipts {
		s.TotalAmount += r.Amount
		if !r.CreatedAt.Before(monthStart) {
			s.ThisMonthReceipts++
			s.ThisMonthAmount += r.Amount
		}
	}
	if s.TotalReceipts > 0 {
		s.AvgReceiptValue = s.TotalAmount / float64(s.TotalReceipts)
	}
	return s
}

func groupBy(receipts []entities.Receipt, key func(entities.Receipt) string) map[string]ServiceBreakdown {
	groups := make(map[string]ServiceBreakdown)
	for _, r := range receipts {
		name := key(r)
		if name == "" {
			name = "Não informado"
		}
		g := groups[name]
		g.Name = name
		g.Count++
		g.Amount += r.Amount
		groups[name] = g
	}
	return groups
}

// topN sorts by count desc (amount desc as tie-break) and truncates; n <= 0
// keeps everything.
func topN(groups map[string]ServiceBreakdown, n int) []ServiceBreakdown {
	out := make([]ServiceBreakdown, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
