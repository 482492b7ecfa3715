package event

import "time"

const RestaurantRegisteredDestination string = "restaurant_registered"

type RestaurantRegisteredMessage struct {
	RestaurantID  int64     `json:"restaurant_id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	MenuItemCount int       `json:"menu_item_count"`
	RegisteredAt  time.Time `json:"registered_at"`
}
