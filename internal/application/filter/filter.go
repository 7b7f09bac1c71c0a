// Package filter provides the pure set-reduction functions behind every
// list screen's search box. Functions always return a fresh slice and never
// mutate their input.
package filter

import (
	"strings"
	"time"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

// BySubstring keeps items whose key contains the query, case-insensitively.
// An empty query keeps everything.
func BySubstring[T any](items []T, query string, key func(T) string) []T {
	if query == "" {
		return append([]T{}, items...)
	}
	query = strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(key(item)), query) {
			out = append(out, item)
		}
	}
	return out
}

// ByEquals keeps items whose key exactly equals want.
func ByEquals[T any](items []T, want string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == want {
			out = append(out, item)
		}
	}
	return out
}

// ByDateRange keeps items whose date falls within the inclusive [from, to]
// range. Both bounds are required; a missing or unparseable bound rejects
// the whole operation rather than silently matching nothing. Items whose
// date cannot be parsed are dropped.
func ByDateRange[T any](items []T, from, to string, date func(T) string) ([]T, error) {
	if from == "" || to == "" {
		return nil, apperror.NewValidationMessage("Please select both From and To dates")
	}
	fromDay, ok := entity.ParseDate(from)
	if !ok {
		return nil, apperror.NewValidationMessage("Invalid From date")
	}
	toDay, ok := entity.ParseDate(to)
	if !ok {
		return nil, apperror.NewValidationMessage("Invalid To date")
	}
	fromDay = truncate(fromDay)
	toDay = truncate(toDay)
	if toDay.Before(fromDay) {
		return nil, apperror.NewValidationMessage("From date must not be after To date")
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		d, ok := entity.ParseDate(date(item))
		if !ok {
			continue
		}
		day := truncate(d)
		if !day.Before(fromDay) && !day.After(toDay) {
			out = append(out, item)
		}
	}
	return out, nil
}

// truncate drops the time-of-day component so range checks compare whole
// days. Backend timestamps carry times; the search inputs do not.
func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
