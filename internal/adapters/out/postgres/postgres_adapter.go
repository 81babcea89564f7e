package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/common-availability-slots-generator/internal/utils"
)

// PostgresAdapter реализует StoragePort поверх пула pgx.
// Вся транзакционность и пулинг остаются здесь, ядро сервиса про них не знает.
type PostgresAdapter struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewPostgresAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*PostgresAdapter, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.URI)
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresAdapter{
		pool:   pool,
		logger: logger.WithModule("PostgresAdapter"),
	}, nil
}

func (a *PostgresAdapter) Close() {
	a.pool.Close()
}

func (a *PostgresAdapter) GetUsers(ctx context.Context, ids []int64) ([]domain.User, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, COALESCE(name, ''), timezone
		FROM users
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		a.logger.Error("postgres.users.query_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Timezone); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (a *PostgresAdapter) GetWeeklyRules(ctx context.Context, userID int64, dayOfWeek int) ([]domain.WeeklyRule, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, user_id, day_of_week, start_time, end_time
		FROM weekly_availability
		WHERE user_id = $1 AND day_of_week = $2
	`, userID, dayOfWeek)
	if err != nil {
		a.logger.Error("postgres.weekly_rules.query_failed", out.LogFields{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	rules := make([]domain.WeeklyRule, 0)
	for rows.Next() {
		var rule domain.WeeklyRule
		var startTime, endTime pgtype.Time
		if err := rows.Scan(&rule.ID, &rule.UserID, &rule.DayOfWeek, &startTime, &endTime); err != nil {
			return nil, err
		}
		rule.StartTime = clockFromPg(startTime)
		rule.EndTime = clockFromPg(endTime)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (a *PostgresAdapter) GetOverrideRules(ctx context.Context, userID int64, date time.Time) ([]domain.OverrideRule, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, user_id, date, start_time, end_time
		FROM specific_availability
		WHERE user_id = $1 AND date = $2::date
	`, userID, date.Format("2006-01-02"))
	if err != nil {
		a.logger.Error("postgres.override_rules.query_failed", out.LogFields{
			"userId": userID,
			"date":   utils.FormatRequestDate(date),
			"error":  err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	rules := make([]domain.OverrideRule, 0)
	for rows.Next() {
		var rule domain.OverrideRule
		var startTime, endTime pgtype.Time
		if err := rows.Scan(&rule.ID, &rule.UserID, &rule.Date, &startTime, &endTime); err != nil {
			return nil, err
		}
		rule.StartTime = clockFromPg(startTime)
		rule.EndTime = clockFromPg(endTime)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (a *PostgresAdapter) GetBusyEvents(ctx context.Context, userID int64, dayStart, dayEnd time.Time) ([]domain.BusyEvent, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, user_id, booking_id, start_datetime, end_datetime
		FROM scheduled_events
		WHERE user_id = $1 AND start_datetime >= $2 AND start_datetime < $3
	`, userID, dayStart, dayEnd)
	if err != nil {
		a.logger.Error("postgres.busy_events.query_failed", out.LogFields{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.BusyEvent, 0)
	for rows.Next() {
		var event domain.BusyEvent
		var bookingID pgtype.UUID
		if err := rows.Scan(&event.ID, &event.UserID, &bookingID, &event.StartDateTime, &event.EndDateTime); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			event.BookingID = uuid.UUID(bookingID.Bytes)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (a *PostgresAdapter) StoreBusyEvent(ctx context.Context, event domain.BusyEvent) (int64, error) {
	var id int64
	err := a.pool.QueryRow(ctx, `
		INSERT INTO scheduled_events (user_id, booking_id, start_datetime, end_datetime)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, event.UserID, event.BookingID, event.StartDateTime, event.EndDateTime).Scan(&id)
	if err != nil {
		a.logger.Error("postgres.busy_events.insert_failed", out.LogFields{
			"userId":    event.UserID,
			"bookingId": event.BookingID,
			"error":     err.Error(),
		})
		return 0, err
	}
	return id, nil
}

func (a *PostgresAdapter) DeleteBusyEventByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	_, err := a.pool.Exec(ctx, `
		DELETE FROM scheduled_events WHERE booking_id = $1
	`, bookingID)
	if err != nil {
		a.logger.Error("postgres.busy_events.delete_failed", out.LogFields{
			"bookingId": bookingID,
			"error":     err.Error(),
		})
	}
	return err
}

// clockFromPg переводит колонку time в представление времени суток:
// дата не несет смысла, используется только Clock()
func clockFromPg(t pgtype.Time) time.Time {
	return time.Time{}.Add(time.Duration(t.Microseconds) * time.Microsecond)
}
