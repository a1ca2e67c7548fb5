package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/travel_safety/internal/models"
)

const notProvided = "Not provided"

func EmailSubject(user *models.User) string {
	return "URGENT: SOS Alert from " + user.FullName
}

// EmailBody - полный текст письма: пользователь, координаты, ссылка на карту, время
func EmailBody(user *models.User, event *models.SosEvent) string {
	var b strings.Builder
	b.WriteString("URGENT SOS ALERT\n\n")
	fmt.Fprintf(&b, "User: %s\n", user.FullName)
	fmt.Fprintf(&b, "Email: %s\n", user.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", orNotProvided(user.PhoneNumber))

	b.WriteString("Location:\n")
	fmt.Fprintf(&b, "Latitude: %v\n", event.Latitude)
	fmt.Fprintf(&b, "Longitude: %v\n", event.Longitude)
	fmt.Fprintf(&b, "Google Maps: %s\n\n", mapsLink(event))

	fmt.Fprintf(&b, "Time: %s\n", event.Timestamp.UTC().Format(time.RFC3339))
	if event.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", event.Message)
	}
	if event.IsOffline {
		b.WriteString("\n⚠️ NOTE: This SOS was sent while the user was offline.\n")
	}

	b.WriteString("\nPlease take immediate action to assist this user.")
	return b.String()
}

// SMSBody - короткий текст для SMS
func SMSBody(user *models.User, event *models.SosEvent) string {
	return "🚨 SOS ALERT 🚨\n" +
		"User: " + user.FullName + "\n" +
		"Phone: " + orNotProvided(user.PhoneNumber) + "\n" +
		"Location: " + mapsLink(event)
}

func mapsLink(event *models.SosEvent) string {
	return fmt.Sprintf("https://maps.google.com/?q=%v,%v", event.Latitude, event.Longitude)
}

func orNotProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return notProvided
	}
	return value
}
