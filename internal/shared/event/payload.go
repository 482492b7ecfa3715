package event

// LocationPayload is a coordinate pair on the wire.
type LocationPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AddressPayload is a postal address on the wire.
type AddressPayload struct {
	Street      string           `json:"street"`
	City        string           `json:"city"`
	PostalCode  string           `json:"postal_code"`
	CountryCode string           `json:"country_code"`
	Location    *LocationPayload `json:"location,omitempty"`
}

// MenuItemPayload is a menu entry on the wire.
type MenuItemPayload struct {
	Name                   string  `json:"name"`
	Price                  float64 `json:"price"`
	PreparationTimeMinutes int     `json:"preparation_time_minutes"`
}

// RestaurantPayload is a restaurant submission on the wire.
type RestaurantPayload struct {
	Name                          string            `json:"name"`
	Phone                         string            `json:"phone"`
	DeliveryRadiusKm              float64           `json:"delivery_radius_km"`
	AveragePreparationTimeMinutes int               `json:"average_preparation_time_minutes"`
	Rating                        float64           `json:"rating"`
	Address                       *AddressPayload   `json:"address"`
	Menu                          []MenuItemPayload `json:"menu"`
}
