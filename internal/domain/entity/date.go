package entity

import "time"

// Wire layouts the backend has been observed to use for date fields.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
}

// ParseDate parses a backend date string. The backend is not consistent
// about layout (bare dates from form inputs, full timestamps from the
// database), so several layouts are tried.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate renders a backend date string as DD/MM/YYYY for spreadsheet
// export. Unparseable or empty values render as "N/A", matching what the
// screens show for missing dates.
func DisplayDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return "N/A"
	}
	return t.Format("02/01/2006")
}
