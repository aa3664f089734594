package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// The hospital only takes Indian contact numbers on the booking form.
const phoneRegion = "IN"

// NormalizePhone formats a recognizable Indian number as E.164 (+91 followed
// by the subscriber number), so "98765 43210" and "+919876543210" store the
// same way. Unparseable input is returned trimmed and is left for validation
// to reject.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return phone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}
