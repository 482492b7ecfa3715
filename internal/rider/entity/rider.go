package entity

import (
	"time"

	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

type Rider struct {
	ID              int64
	Name            string
	Email           string
	Phone           string
	VehicleNumber   string
	CurrentLocation *valueobject.Location
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
