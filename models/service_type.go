package models

// Service is a catalog entry shown on the booking page.
type Service struct {
	ID            int64  `json:"id"`
	Key           string `json:"key"`            // e.g., "ac_clean"
	Title         string `json:"title"`          // e.g., "AC Cleaning & Servicing"
	Description   string `json:"description"`    // One-line summary of the work done.
	StartingPrice string `json:"starting_price"` // Display text, e.g., "₹499". Not numeric.
}
