package notification

import (
	"fmt"
	"net/url"
	"strings"

	"homefix/models"
)

const waBaseURL = "https://wa.me/"

// DeepLink builds a wa.me link that opens a chat with phone and the message
// pre-filled. An empty phone yields a link without a recipient, which lets
// the sender pick the chat. No network call is made.
func DeepLink(phone, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return waBaseURL + waDigits(phone) + "?text=" + escaped
}

// AdminBookingMessage summarises a new booking for the admin chat.
func AdminBookingMessage(b models.Booking, serviceTitle string) string {
	return strings.Join([]string{
		"New Booking",
		"ID: " + b.ID,
		"Name: " + b.Name,
		"Phone: " + b.Phone,
		fmt.Sprintf("Service: %s (#%d)", serviceTitle, b.ServiceID),
		"Address: " + b.Address,
		"Pincode: " + b.Pincode,
	}, "\n")
}

// TechnicianJobMessage is the job sheet sent to the assigned technician.
func TechnicianJobMessage(b models.Booking) string {
	title := b.ServiceTitle
	if title == "" {
		title = fmt.Sprintf("Service #%d", b.ServiceID)
	}
	return strings.Join([]string{
		"New Job Assigned",
		"Booking: " + b.ID,
		"Service: " + title,
		"Customer: " + b.Name,
		"Phone: " + b.Phone,
		"Address: " + b.Address + ", " + b.Pincode,
	}, "\n")
}

// CustomerConfirmationMessage acknowledges a booking to the customer.
func CustomerConfirmationMessage(b models.Booking, serviceTitle string) string {
	return fmt.Sprintf(
		"Hi %s, we have received your booking %s for %s. Our team will call you shortly to confirm a visit time.",
		b.Name, b.ID, serviceTitle,
	)
}

// CustomerAssignedMessage tells the customer who is coming.
func CustomerAssignedMessage(b models.Booking, tech models.Technician) string {
	return fmt.Sprintf(
		"Hi %s, %s (%s) has been assigned to your booking %s and will contact you soon.",
		b.Name, tech.Name, tech.Phone, b.ID,
	)
}
