package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/gofood/internal/pkg/goerror"
	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

const queryUpdateRiderLocation = `
UPDATE riders SET current_location = $2, updated_at = $3
WHERE id = $1`

func (s *DB) UpdateRiderLocation(ctx context.Context, id int64, loc valueobject.Location, updatedAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateRiderLocation")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateRiderLocation, id, loc, updatedAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
