package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingReceived is the state of every new booking.
	BookingReceived BookingStatus = "received"
	// BookingAssigned is set once a technician has been attached.
	BookingAssigned BookingStatus = "assigned"
)

// Booking represents a customer's request for a service.
type Booking struct {
	ID           string        `json:"id"`            // Short unique identifier, e.g., "HF-3f9c0a1b2c4d"
	Name         string        `json:"name"`          // Customer name
	Phone        string        `json:"phone"`         // Customer phone as entered
	Address      string        `json:"address"`       // Visit address
	Pincode      string        `json:"pincode"`       // Postal code
	ServiceID    int64         `json:"service_id"`    // Catalog entry requested
	Status       BookingStatus `json:"status"`        // "received" or "assigned"
	AssignedTo   *string       `json:"assigned_to"`   // Technician ID, null until assigned
	CreatedAt    time.Time     `json:"created_at"`    // UTC
	ServiceTitle string        `json:"service_title"` // Joined from the catalog; empty if the service row is gone
}

// BookingReceipt is what a customer gets back after submitting a booking.
type BookingReceipt struct {
	ID               string `json:"id"`
	WALink           string `json:"wa_link"`     // Deep-link for the admin; empty when no admin contact is configured
	NotificationSent bool   `json:"twilio_sent"` // Whether the automated customer message was accepted
}

// AssignmentReceipt is returned after a technician is attached to a booking.
type AssignmentReceipt struct {
	BookingID    string `json:"booking_id"`
	TechnicianID string `json:"technician_id"`
	WALink       string `json:"wa_link"` // Deep-link for messaging the technician
}
