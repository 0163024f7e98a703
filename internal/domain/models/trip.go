package models

// Trip is one scheduled departure of a bus on a route.
type Trip struct {
	ID           int64   `json:"id"`
	BusCode      string  `json:"busCode"`
	RouteFrom    string  `json:"routeFrom"`
	RouteTo      string  `json:"routeTo"`
	TripDate     string  `json:"tripDate"`
	TripTime     string  `json:"tripTime"`
	PricePerSeat int64   `json:"pricePerSeat"`
	Rating       float64 `json:"rating"`
	Status       string  `json:"status"`
	SeatsLeft    int     `json:"seatsLeft"`
}

// Trip statuses.
const (
	TripScheduled = "SCHEDULED"
	TripDeparted  = "DEPARTED"
	TripDone      = "DONE"
)
