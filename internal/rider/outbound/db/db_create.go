package db

import (
	"context"

	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

const queryInsertRider = `
INSERT INTO riders (
	id, name, email, phone, vehicle_number, current_location, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (s *DB) CreateRider(ctx context.Context, r *entity.Rider) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRider")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryInsertRider,
		r.ID,
		r.Name,
		r.Email,
		r.Phone,
		r.VehicleNumber,
		r.CurrentLocation,
		r.CreatedAt,
		r.UpdatedAt,
	)
	err = s.mapError(err)
	return err
}
