package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	mock_interfaces "recibozap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNumberingUseCase_Next(t *testing.T) {
	t.Run("formats the per year sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNumberingUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().IncrementYearCounter(gomock.Any(), "+5511999999999", 2025).Return(1, nil)
		if got := uc.Next(context.Background(), "+5511999999999"); got != "001/2025" {
			t.Fatalf("expected 001/2025, got %s", got)
		}

		repo.EXPECT().IncrementYearCounter(gomock.Any(), "+5511999999999", 2025).Return(123, nil)
		if got := uc.Next(context.Background(), "+5511999999999"); got != "123/2025" {
			t.Fatalf("expected 123/2025, got %s", got)
		}
	})

	t.Run("normalizes the phone key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNumberingUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().IncrementYearCounter(gomock.Any(), "+5511999999999", 2025).Return(7, nil)
		if got := uc.Next(context.Background(), "whatsapp:+55 11 99999 9999"); got != "007/2025" {
			t.Fatalf("expected 007/2025, got %s", got)
		}
	})

	t.Run("concurrent calls never repeat a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNumberingUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		var mu sync.Mutex
		counter := 0
		repo.EXPECT().IncrementYearCounter(gomock.Any(), "+5511999999999", 2025).DoAndReturn(
			func(context.Context, string, int) (int, error) {
				mu.Lock()
				defer mu.Unlock()
				counter++
				return counter, nil
			}).Times(50)

		results := make(chan string, 50)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- uc.Next(context.Background(), "+5511999999999")
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[string]bool)
		for got := range results {
			if seen[got] {
				t.Fatalf("duplicate receipt number %s", got)
			}
			seen[got] = true
		}
		if len(seen) != 50 {
			t.Fatalf("expected 50 distinct numbers, got %d", len(seen))
		}
	})

	t.Run("falls back to a timestamp value on counter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewNumberingUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().IncrementYearCounter(gomock.Any(), gomock.Any(), 2025).Return(0, errors.New("dynamo down"))

		got := uc.Next(context.Background(), "+5511999999999")
		if !strings.HasSuffix(got, "/2025") {
			t.Fatalf("expected /2025 suffix, got %s", got)
		}
		millis := fmt.Sprintf("%d", fixedNow.UnixMilli())
		if got != millis[len(millis)-6:]+"/2025" {
			t.Fatalf("unexpected fallback value %s", got)
		}
	})
}
