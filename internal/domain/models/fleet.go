package models

// Vehicle is a bus in the transporter's fleet.
type Vehicle struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	PlateNumber string `json:"plateNumber"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

// Driver is a driver account managed by the transporter.
type Driver struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"licenseNo"`
	Status    string `json:"status"`
}

// FleetReport aggregates fleet activity for the transporter dashboard.
type FleetReport struct {
	Trips         int   `json:"trips"`
	Boarded       int   `json:"boarded"`
	Missed        int   `json:"missed"`
	Revenue       int64 `json:"revenue"`
	Cancellations int   `json:"cancellations"`
}
