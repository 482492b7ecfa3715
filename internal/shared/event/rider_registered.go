package event

import "time"

const RiderRegisteredDestination string = "rider_registered"

type RiderRegisteredMessage struct {
	RiderID       int64     `json:"rider_id"`
	Name          string    `json:"name"`
	VehicleNumber string    `json:"vehicle_number"`
	RegisteredAt  time.Time `json:"registered_at"`
}
