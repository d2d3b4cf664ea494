package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// DateOf truncates t to its calendar date in t's own location and returns it as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar dates. A zero bound is open.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether the calendar date of d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	day := DateOf(d)
	if !r.From.IsZero() && day.Before(DateOf(r.From)) {
		return false
	}
	if !r.To.IsZero() && day.After(DateOf(r.To)) {
		return false
	}
	return true
}
