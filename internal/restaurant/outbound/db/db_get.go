package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
	"github.com/shandysiswandi/gofood/internal/restaurant/entity"
)

const querySelectRestaurant = `
SELECT id, name, phone, delivery_radius_km, average_preparation_time_minutes,
	rating, address, created_at, updated_at
FROM restaurants
WHERE id = $1`

const querySelectMenuItems = `
SELECT id, restaurant_id, name, price::float8, preparation_time_minutes
FROM restaurant_menu_items
WHERE restaurant_id = $1
ORDER BY position`

func (s *DB) GetRestaurant(ctx context.Context, id int64) (_ *entity.Restaurant, err error) {
	ctx, span := s.startSpan(ctx, "GetRestaurant")
	defer func() { s.endSpan(span, err) }()

	var (
		r    entity.Restaurant
		addr valueobject.Address
	)
	if err = s.conn.QueryRow(ctx, querySelectRestaurant, id).Scan(
		&r.ID,
		&r.Name,
		&r.Phone,
		&r.DeliveryRadiusKm,
		&r.AveragePreparationTimeMinutes,
		&r.Rating,
		&addr,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, s.mapError(err)
	}
	r.Address = &addr

	rows, err := s.conn.Query(ctx, querySelectMenuItems, id)
	if err != nil {
		return nil, s.mapError(err)
	}

	r.Menu, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.MenuItem, error) {
		var item entity.MenuItem
		err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.PreparationTimeMinutes)
		return item, err
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &r, nil
}
