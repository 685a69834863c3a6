package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"massageshop/internal/domain"
	"massageshop/pkg/dbmetrics"
	"massageshop/pkg/psqlbuilder"
)

// joinedColumns колонки бронирования с денормализованными данными услуги
var joinedColumns = []string{
	"b.id",
	"b.service_id",
	"b.booking_date",
	"b.start_time",
	"b.customer_name",
	"b.customer_email",
	"b.customer_phone",
	"b.created_at",
	"s.name AS service_name",
	"s.duration_minutes",
	"s.price",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её -
// create_booking usecase проверяет существование услуги и вставляет
// запись атомарно.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"service_id",
			"booking_date",
			"start_time",
			"customer_name",
			"customer_email",
			"customer_phone",
		).
		Values(
			booking.ServiceID,
			booking.Date,
			booking.StartTime,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID с данными услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		Join("services s ON b.service_id = s.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.Date,
		&booking.StartTime,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&createdAt,
		&booking.ServiceName,
		&booking.DurationMinutes,
		&booking.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetWithFilter получает бронирования с данными услуги.
// Без фильтра по дате - все бронирования, сначала новые (для админ-списка).
// С фильтром - бронирования одного дня, упорядоченные по времени начала;
// этот порядок детерминирован и определяет раскладку таймлайна.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		Join("services s ON b.service_id = s.id")

	if filter.Date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"b.booking_date": *filter.Date}).
			OrderBy("b.start_time ASC", "b.created_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.created_at DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.Date,
			&booking.StartTime,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&createdAt,
			&booking.ServiceName,
			&booking.DurationMinutes,
			&booking.Price,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
