package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	s = strings.Trim(s, "-")

	return s
}

// NextBillNo derives the next bill number from the last issued one. Bill
// numbers are PREFIX-NNNN; an unparseable or empty last number restarts the
// sequence at 1.
func NextBillNo(prefix, last string) string {
	n := 0
	if idx := strings.LastIndex(last, "-"); idx >= 0 {
		if parsed, err := strconv.Atoi(last[idx+1:]); err == nil {
			n = parsed
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, n+1)
}

// GenerateReferenceNo generates a unique reference number
func GenerateReferenceNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
