package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSBody(t *testing.T) {
	user := testUser()
	user.PhoneNumber = ""

	body := SMSBody(user, testEvent())

	assert.Equal(t, "🚨 SOS ALERT 🚨\nUser: Asha Rao\nPhone: Not provided\nLocation: https://maps.google.com/?q=12.97,77.59", body)
}

func TestEmailBody(t *testing.T) {
	event := testEvent()

	body := EmailBody(testUser(), event)

	assert.Contains(t, body, "User: Asha Rao")
	assert.Contains(t, body, "Phone: +910000")
	assert.Contains(t, body, "https://maps.google.com/?q=12.97,77.59")
	assert.Contains(t, body, "Time: 2024-05-01T10:00:00Z")
	assert.Contains(t, body, "Message: help")
	assert.NotContains(t, body, "offline")

	event.IsOffline = true
	event.Message = ""
	body = EmailBody(testUser(), event)
	assert.Contains(t, body, "This SOS was sent while the user was offline.")
	assert.NotContains(t, body, "Message:")
}
