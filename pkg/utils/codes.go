package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugStrip    = regexp.MustCompile("[^a-z0-9-]")
	slugCollapse = regexp.MustCompile("-+")
)

// Slugify turns a display name into a URL-safe subdomain slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateBookingNo generates a unique booking number
func GenerateBookingNo() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateServiceCode generates a unique service code
func GenerateServiceCode() string {
	return "SVC-" + strings.ToUpper(uuid.New().String()[:8])
}
