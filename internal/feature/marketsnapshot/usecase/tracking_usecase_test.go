package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eve_market/internal/feature/marketsnapshot/domain"
	"eve_market/internal/feature/marketsnapshot/domain/entity"
	"eve_market/internal/feature/marketsnapshot/usecase"
)

// ErrDB はモックと期待値の間で共有されるセンチネルエラーです。
var ErrDB = errors.New("database error")

// mockTrackedItemRepository はTrackedItemRepositoryインターフェースのモック実装です。
type mockTrackedItemRepository struct {
	ListActiveFunc func(ctx context.Context) ([]entity.TrackedItem, error)
	UpsertFunc     func(ctx context.Context, item entity.TrackedItem) error
	UpsertCalls    int
}

func (m *mockTrackedItemRepository) ListActive(ctx context.Context) ([]entity.TrackedItem, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, errors.New("ListActiveFunc is not implemented")
}

func (m *mockTrackedItemRepository) Upsert(ctx context.Context, item entity.TrackedItem) error {
	m.UpsertCalls++
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, item)
	}
	return errors.New("UpsertFunc is not implemented")
}

type resolverFunc func(ctx context.Context, name string) (int64, error)

func (f resolverFunc) ResolveItemID(ctx context.Context, name string) (int64, error) {
	return f(ctx, name)
}

func TestTrackingUsecase_Track(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		resolve     resolverFunc
		upsertErr   error
		want        entity.TrackedItem
		wantErr     error
		wantUpserts int
	}{
		{
			name:  "success: resolved item is stored",
			input: " Tritanium ",
			resolve: func(ctx context.Context, name string) (int64, error) {
				return 34, nil
			},
			want:        entity.TrackedItem{TypeID: 34, Name: "Tritanium", IsActive: true},
			wantUpserts: 1,
		},
		{
			name:  "error: unknown item is not stored",
			input: "Unobtainium",
			resolve: func(ctx context.Context, name string) (int64, error) {
				return 0, domain.ErrItemNotFound
			},
			wantErr:     domain.ErrItemNotFound,
			wantUpserts: 0,
		},
		{
			name:  "error: repository fails",
			input: "Pyerite",
			resolve: func(ctx context.Context, name string) (int64, error) {
				return 35, nil
			},
			upsertErr:   ErrDB,
			wantErr:     ErrDB,
			wantUpserts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stored entity.TrackedItem
			repo := &mockTrackedItemRepository{
				UpsertFunc: func(ctx context.Context, item entity.TrackedItem) error {
					stored = item
					return tt.upsertErr
				},
			}
			uc := usecase.NewTrackingUsecase(repo, tt.resolve)

			got, err := uc.Track(context.Background(), tt.input)
			assert.Equal(t, tt.wantUpserts, repo.UpsertCalls)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestTrackingUsecase_ListTracked(t *testing.T) {
	t.Parallel()

	items := []entity.TrackedItem{{TypeID: 34, Name: "Tritanium", IsActive: true}}
	repo := &mockTrackedItemRepository{
		ListActiveFunc: func(ctx context.Context) ([]entity.TrackedItem, error) {
			return items, nil
		},
	}
	uc := usecase.NewTrackingUsecase(repo, nil)

	got, err := uc.ListTracked(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
