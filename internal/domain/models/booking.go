package models

// Booking captures one reservation from search to payment.
type Booking struct {
	ID             int64  `json:"id"`
	TicketCode     string `json:"ticketCode"`
	UserID         int64  `json:"userId"`
	TripID         int64  `json:"tripId"`
	RouteFrom      string `json:"routeFrom"`
	RouteTo        string `json:"routeTo"`
	TripDate       string `json:"tripDate"`
	TripTime       string `json:"tripTime"`
	PassengerCount int    `json:"passengerCount"`
	PricePerSeat   int64  `json:"pricePerSeat"`
	ServiceFee     int64  `json:"serviceFee"`
	DiscountCode   string `json:"discountCode,omitempty"`
	DiscountAmount int64  `json:"discountAmount"`
	Total          int64  `json:"total"`
	Status         string `json:"status"`
	CancelReason   string `json:"cancelReason,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Booking statuses.
const (
	BookingPending   = "PENDING"
	BookingPaid      = "PAID"
	BookingCancelled = "CANCELLED"
)

// BookingSeat represents seat allocation for a booking.
type BookingSeat struct {
	SeatCode      string `json:"seatCode"`
	PassengerName string `json:"passengerName,omitempty"`
}

// Payment is the mock gateway record stamped on a paid booking.
type Payment struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"bookingId"`
	Method    string `json:"method"`
	CardLast4 string `json:"cardLast4,omitempty"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}
