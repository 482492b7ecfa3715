package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

const queryInsertRestaurant = `
INSERT INTO restaurants (
	id, name, phone, delivery_radius_km, average_preparation_time_minutes,
	rating, address, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

var menuItemColumns = []string{"id", "restaurant_id", "position", "name", "price", "preparation_time_minutes"}

// CreateRestaurant stores the restaurant and its menu in one transaction.
func (s *DB) CreateRestaurant(ctx context.Context, r *entity.Restaurant) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRestaurant")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, queryInsertRestaurant,
		r.ID,
		r.Name,
		r.Phone,
		r.DeliveryRadiusKm,
		r.AveragePreparationTimeMinutes,
		r.Rating,
		r.Address,
		r.CreatedAt,
		r.UpdatedAt,
	); err != nil {
		return s.mapError(err)
	}

	if len(r.Menu) > 0 {
		if _, err = tx.CopyFrom(ctx,
			pgx.Identifier{"restaurant_menu_items"},
			menuItemColumns,
			pgx.CopyFromSlice(len(r.Menu), func(i int) ([]any, error) {
				item := r.Menu[i]
				return []any{item.ID, r.ID, i, item.Name, item.Price, item.PreparationTimeMinutes}, nil
			}),
		); err != nil {
			return s.mapError(err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}
