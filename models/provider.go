package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Technician is a worker an admin can attach to bookings.
type Technician struct {
	ID          string    `json:"id"`           // e.g., "T-0a1b2c3d4e5f"
	Name        string    `json:"name"`         // Display name
	Phone       string    `json:"phone"`        // WhatsApp-capable number
	AreasCSV    string    `json:"areas_csv"`    // Pincodes or localities served, comma separated
	ServicesCSV string    `json:"services_csv"` // Service keys or ids handled, comma separated
	OwnerName   string    `json:"owner_name"`   // Business owner, for franchise technicians
	CreatedAt   time.Time `json:"created_at"`   // UTC
}

// TechnicianInput holds the admin registration form.
type TechnicianInput struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Areas     CSVList `json:"areas"`
	Services  CSVList `json:"services"`
	OwnerName string  `json:"owner_name"`
}

// CSVList accepts either "a, b" or ["a", "b"] and keeps the trimmed,
// non-empty entries in order.
type CSVList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *CSVList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		items = strings.Split(s, ",")
	}
	out := make(CSVList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}

// String joins the entries with commas.
func (l CSVList) String() string {
	return strings.Join(l, ",")
}
