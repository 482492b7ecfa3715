package db

import (
	"context"

	"github.com/shandysiswandi/gofood/internal/rider/entity"
)

const querySelectRider = `
SELECT id, name, email, phone, vehicle_number, current_location, created_at, updated_at
FROM riders
WHERE id = $1`

func (s *DB) GetRider(ctx context.Context, id int64) (_ *entity.Rider, err error) {
	ctx, span := s.startSpan(ctx, "GetRider")
	defer func() { s.endSpan(span, err) }()

	var r entity.Rider
	if err = s.conn.QueryRow(ctx, querySelectRider, id).Scan(
		&r.ID,
		&r.Name,
		&r.Email,
		&r.Phone,
		&r.VehicleNumber,
		&r.CurrentLocation,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, s.mapError(err)
	}

	return &r, nil
}
