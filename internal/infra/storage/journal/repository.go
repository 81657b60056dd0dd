// Package journal persists committed bookings to Postgres.
//
// The journal is an ops aid for reconciliation against the external
// calendar; the calendar remains the sole source of booking truth, so
// a journal write failure never fails the booking.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository stores and lists journal entries.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a journal repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record inserts one committed booking into the journal.
func (r *Repository) Record(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psql.Insert("booking_journal").
		Columns(
			"reference",
			"name",
			"phone",
			"email",
			"booking_date",
			"start_time",
			"duration_minutes",
			"message",
			"event_id",
		).
		Values(
			booking.Reference,
			booking.Name,
			booking.Phone,
			booking.Email,
			booking.Date,
			booking.StartTime.String(),
			booking.DurationMinutes,
			booking.Message,
			booking.EventID,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Record - build insert: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByDate returns the journal entries for one calendar date,
// ordered by start time.
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	query, args, err := psql.Select(
		"reference",
		"name",
		"phone",
		"email",
		"booking_date",
		"start_time",
		"duration_minutes",
		"message",
		"event_id",
		"created_at",
	).
		From("booking_journal").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var (
			b         domain.Booking
			startTime string
			createdAt sql.NullTime
		)
		if err := rows.Scan(
			&b.Reference,
			&b.Name,
			&b.Phone,
			&b.Email,
			&b.Date,
			&startTime,
			&b.DurationMinutes,
			&b.Message,
			&b.EventID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan: %v", ErrScanRow, err)
		}
		b.StartTime = types.TimeString(startTime)
		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
