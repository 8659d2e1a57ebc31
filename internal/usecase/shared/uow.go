package shared

import (
	"context"

	"github.com/google/uuid"

	"lendly/internal/domain/booking"
	"lendly/internal/domain/comment"
	"lendly/internal/domain/item"
	"lendly/internal/domain/request"
	"lendly/internal/domain/user"
	sqlc "lendly/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Requests() ItemRequestRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, name, email string) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (uuid.UUID, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, payload []byte) error
}
