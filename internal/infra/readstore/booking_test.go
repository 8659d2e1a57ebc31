//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"lendly/internal/domain/booking"
	"lendly/internal/infra"
	sqlc "lendly/internal/infra/sqlc/generated"
	"lendly/internal/pkg/pgconv"
	"lendly/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingByIDRow), args.Error(1)
}

func (m *MockBookingViewQueries) ListRenterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRenterBookingsParams) ([]sqlc.ListRenterBookingsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListRenterBookingsRow), args.Error(1)
}

func (m *MockBookingViewQueries) ListOwnerBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingsParams) ([]sqlc.ListOwnerBookingsRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListOwnerBookingsRow), args.Error(1)
}

func (m *MockBookingViewQueries) CountBlockingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountBlockingBookingsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingViewQueries) CountFinishedRentals(ctx context.Context, db sqlc.DBTX, arg sqlc.CountFinishedRentalsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func bookingRowFromBuilder(b *builder.BookingBuilder) sqlc.GetBookingByIDRow {
	return sqlc.GetBookingByIDRow{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.OwnerID,
		RenterID:    b.RenterID,
		RenterName:  b.RenterName,
		StartTime:   pgconv.TimeToPgtype(b.StartTime),
		EndTime:     pgconv.TimeToPgtype(b.EndTime),
		Status:      b.Status.String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	testBooking := builder.NewBookingBuilder()
	testRow := bookingRowFromBuilder(testBooking)

	tests := []struct {
		name       string
		mockReturn sqlc.GetBookingByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success",
			mockReturn: testRow,
			mockError:  nil,
			wantError:  false,
		},
		{
			name:       "booking not found",
			mockReturn: sqlc.GetBookingByIDRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "database error",
			mockReturn: sqlc.GetBookingByIDRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingViewQueries)
			mockQueries.On("GetBookingByID", mock.Anything, mock.Anything, testBooking.ID).Return(tt.mockReturn, tt.mockError)

			readStore := NewBookingReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), testBooking.ID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testBooking.ID, view.ID)
				assert.Equal(t, testBooking.ItemID, view.Item.ID)
				assert.Equal(t, testBooking.OwnerID, view.Item.OwnerID)
				assert.Equal(t, testBooking.RenterID, view.Renter.ID)
				assert.Equal(t, testBooking.Status.String(), view.Status)
				assert.WithinDuration(t, testBooking.StartTime, view.StartTime, time.Microsecond)
				assert.WithinDuration(t, testBooking.EndTime, view.EndTime, time.Microsecond)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_ListForRenter(t *testing.T) {
	renterID := uuid.New()
	onTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := builder.NewBookingBuilder().WithRenterID(renterID)
	second := builder.NewBookingBuilder().WithRenterID(renterID).AsApproved()

	rows := []sqlc.ListRenterBookingsRow{
		sqlc.ListRenterBookingsRow(bookingRowFromBuilder(first)),
		sqlc.ListRenterBookingsRow(bookingRowFromBuilder(second)),
	}

	t.Run("rows convert with bucket forwarded", func(t *testing.T) {
		mockQueries := new(MockBookingViewQueries)
		expectedParams := sqlc.ListRenterBookingsParams{
			RenterID: renterID,
			Bucket:   "FUTURE",
			OnTime:   pgconv.TimeToPgtype(onTime),
		}
		mockQueries.On("ListRenterBookings", mock.Anything, mock.Anything, expectedParams).Return(rows, nil)

		readStore := NewBookingReadStore(mockQueries, nil)

		items, err := readStore.ListForRenter(context.Background(), renterID, booking.BucketFuture, onTime)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, first.ID, items[0].ID)
		assert.Equal(t, booking.StatusWaiting.String(), items[0].Status)
		assert.Equal(t, booking.StatusApproved.String(), items[1].Status)

		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingViewQueries)
		mockQueries.On("ListRenterBookings", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListRenterBookingsRow{}, assert.AnError)

		readStore := NewBookingReadStore(mockQueries, nil)

		items, err := readStore.ListForRenter(context.Background(), renterID, booking.BucketAll, onTime)
		assert.Error(t, err)
		assert.Nil(t, items)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_CountBlocking(t *testing.T) {
	itemID := uuid.New()
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	t.Run("count is returned", func(t *testing.T) {
		mockQueries := new(MockBookingViewQueries)
		expectedParams := sqlc.CountBlockingBookingsParams{
			ItemID:    itemID,
			StartTime: pgconv.TimeToPgtype(start),
			EndTime:   pgconv.TimeToPgtype(end),
		}
		mockQueries.On("CountBlockingBookings", mock.Anything, mock.Anything, expectedParams).Return(int64(2), nil)

		readStore := NewBookingReadStore(mockQueries, nil)

		count, err := readStore.CountBlocking(context.Background(), itemID, start, end)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingViewQueries)
		mockQueries.On("CountBlockingBookings", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), assert.AnError)

		readStore := NewBookingReadStore(mockQueries, nil)

		_, err := readStore.CountBlocking(context.Background(), itemID, start, end)
		assert.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_CountFinishedRentals(t *testing.T) {
	itemID := uuid.New()
	renterID := uuid.New()
	onTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockQueries := new(MockBookingViewQueries)
	expectedParams := sqlc.CountFinishedRentalsParams{
		ItemID:   itemID,
		RenterID: renterID,
		OnTime:   pgconv.TimeToPgtype(onTime),
	}
	mockQueries.On("CountFinishedRentals", mock.Anything, mock.Anything, expectedParams).Return(int64(1), nil)

	readStore := NewBookingReadStore(mockQueries, nil)

	count, err := readStore.CountFinishedRentals(context.Background(), itemID, renterID, onTime)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mockQueries.AssertExpectations(t)
}
