package announcement

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("announcement not found")
	ErrUnknownTeacher  = errors.New("authentication required")
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMessageRequired = errors.New("message is required")
	ErrUpdateFailed    = errors.New("failed to update announcement")
)

// dateLayout is the only date format announcements carry, on the wire and in
// storage. Lexicographic comparison of these strings matches chronological
// order.
const dateLayout = "2006-01-02"

// Announcement is a time-bounded notice shown on the school portal.
// StartDate is nil when the announcement is active from the beginning of
// time. Dates stay YYYY-MM-DD strings end to end, never parsed timestamps.
type Announcement struct {
	ID             string
	Message        string
	StartDate      *string
	ExpirationDate string
	CreatedBy      string
}

// Filter defines parameters for listing announcements.
type Filter struct {
	SortByExpirationDesc bool
}

// activeOn reports whether the announcement is visible on the given
// YYYY-MM-DD date.
func (a *Announcement) activeOn(today string) bool {
	if a.StartDate != nil && today < *a.StartDate {
		return false
	}
	return today <= a.ExpirationDate
}

// validDate checks that s parses as a real YYYY-MM-DD calendar date.
// Ordering between start and expiration is deliberately not checked; a start
// after expiration just yields a never-active announcement.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
