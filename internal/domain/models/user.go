package models

// User is an account in any of the three personas
// (passenger, driver, transporter).
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// Notification is a per-user message with a read/unread flag.
type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Issue is a problem report filed by a passenger or driver.
type Issue struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	TripID      int64  `json:"tripId,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
