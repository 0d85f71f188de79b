package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"recibozap/internal/domain/entities"
	mock_interfaces "recibozap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func analyticsReceipts() []entities.Receipt {
	june := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC)
	return []entities.Receipt{
		{ID: "r-1", ServiceName: "Consultoria", ClientName: "Maria", Amount: 100, CreatedAt: july},
		{ID: "r-2", ServiceName: "Consultoria", ClientName: "Maria", Amount: 200, CreatedAt: july},
		{ID: "r-3", ServiceName: "Aula de Violão", ClientName: "Pedro", Amount: 300, CreatedAt: june},
	}
}

func TestAnalyticsUseCase_GetUserDashboard(t *testing.T) {
	t.Run("aggregates totals and month slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receipts := mock_interfaces.NewMockIReceiptRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAnalyticsUseCase(receipts, users)
		uc.now = func() time.Time { return fixedNow }

		users.EXPECT().GetByPhone(gomock.Any(), "+5511999999999").Return(completeUser(), nil)
		receipts.EXPECT().ListByUserPhone(gomock.Any(), "+5511999999999", analyticsScanLimit).Return(analyticsReceipts(), nil)

		d, err := uc.GetUserDashboard(context.Background(), "+5511999999999")
		if err != nil {
			t.Fatalf("GetUserDashboard: %v", err)
		}
		if d.Summary.TotalReceipts != 3 || d.Summary.TotalAmount != 600 {
			t.Fatalf("unexpected summary %+v", d.Summary)
		}
		if d.Summary.AvgReceiptValue != 200 {
			t.Fatalf("unexpected avg %v", d.Summary.AvgReceiptValue)
		}
		if d.Summary.ThisMonthReceipts != 2 || d.Summary.ThisMonthAmount != 300 {
			t.Fatalf("unexpected month slice %+v", d.Summary)
		}
		if len(d.TopServices) != 2 || d.TopServices[0].Name != "Consultoria" || d.TopServices[0].Count != 2 {
			t.Fatalf("unexpected top services %+v", d.TopServices)
		}
		if len(d.RecentActivity) != 3 {
			t.Fatalf("unexpected recent activity %+v", d.RecentActivity)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receipts := mock_interfaces.NewMockIReceiptRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAnalyticsUseCase(receipts, users)

		users.EXPECT().GetByPhone(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)

		if _, err := uc.GetUserDashboard(context.Background(), "+5511999999999"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestAnalyticsUseCase_GetFinancialReport(t *testing.T) {
	t.Run("filters by period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receipts := mock_interfaces.NewMockIReceiptRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAnalyticsUseCase(receipts, users)
		uc.now = func() time.Time { return fixedNow }

		users.EXPECT().GetByPhone(gomock.Any(), gomock.Any()).Return(completeUser(), nil)
		receipts.EXPECT().ListByUserPhone(gomock.Any(), gomock.Any(), analyticsScanLimit).Return(analyticsReceipts(), nil)

		start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC)
		r, err := uc.GetFinancialReport(context.Background(), "+5511999999999", start, end)
		if err != nil {
			t.Fatalf("GetFinancialReport: %v", err)
		}
		if r.Summary.TotalReceipts != 2 || r.Summary.TotalAmount != 300 {
			t.Fatalf("unexpected summary %+v", r.Summary)
		}
		if len(r.ByService) != 1 || r.ByService[0].Name != "Consultoria" {
			t.Fatalf("unexpected breakdown %+v", r.ByService)
		}
	})

	t.Run("zero period keeps everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receipts := mock_interfaces.NewMockIReceiptRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAnalyticsUseCase(receipts, users)
		uc.now = func() time.Time { return fixedNow }

		users.EXPECT().GetByPhone(gomock.Any(), gomock.Any()).Return(completeUser(), nil)
		receipts.EXPECT().ListByUserPhone(gomock.Any(), gomock.Any(), analyticsScanLimit).Return(analyticsReceipts(), nil)

		r, err := uc.GetFinancialReport(context.Background(), "+5511999999999", time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("GetFinancialReport: %v", err)
		}
		if r.Summary.TotalReceipts != 3 {
			t.Fatalf("unexpected summary %+v", r.Summary)
		}
		if len(r.ByService) != 2 || len(r.ByClient) != 2 {
			t.Fatalf("unexpected breakdowns %+v %+v", r.ByService, r.ByClient)
		}
	})
}
