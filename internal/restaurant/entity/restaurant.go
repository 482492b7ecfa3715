package entity

import (
	"time"

	"github.com/shandysiswandi/gofood/internal/pkg/valueobject"
)

type Restaurant struct {
	ID                            int64
	Name                          string
	Phone                         string
	DeliveryRadiusKm              float64
	AveragePreparationTimeMinutes int
	Rating                        float64
	Address                       *valueobject.Address
	Menu                          []MenuItem
	CreatedAt                     time.Time
	UpdatedAt                     time.Time
}

type MenuItem struct {
	ID                     int64
	RestaurantID           int64
	Name                   string
	Price                  float64
	PreparationTimeMinutes int
}

// ---- //

type ValidationReport struct {
	SubmissionID string
	PartnerID    string
	Errors       map[string][]string
}

func (r ValidationReport) Valid() bool {
	return len(r.Errors) == 0
}
