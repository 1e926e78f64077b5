package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// BookingInput holds the fields submitted from the booking form.
type BookingInput struct {
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Pincode   string      `json:"pincode"`
	ServiceID *ServiceRef `json:"service_id"`
}

// AssignInput names a booking and the technician to attach to it.
type AssignInput struct {
	BookingID    string `json:"booking_id"`
	TechnicianID string `json:"technician_id"`
	// TechID is the short field name the admin page posts.
	TechID string `json:"tech_id"`
}

// Technician returns whichever technician field was supplied.
func (in AssignInput) Technician() string {
	if id := strings.TrimSpace(in.TechnicianID); id != "" {
		return id
	}
	return strings.TrimSpace(in.TechID)
}

// ServiceRef is a service id that may arrive as a JSON number or a numeric
// string (HTML select values are strings). An empty string decodes to zero.
type ServiceRef int64

// UnmarshalJSON implements json.Unmarshaler.
func (r *ServiceRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*r = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errors.NotValidf("service_id %q", s)
		}
		*r = ServiceRef(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.NotValidf("service_id %s", data)
	}
	*r = ServiceRef(n)
	return nil
}

// Int64 returns the id, or zero when the reference is absent.
func (r *ServiceRef) Int64() int64 {
	if r == nil {
		return 0
	}
	return int64(*r)
}
