package render

import (
	"fmt"
	"strings"

	"github.com/sirspot/resume/pkg/entry"
	"github.com/sirspot/resume/pkg/section"
)

const (
	dateWidth     = 10
	dateSeparator = " to "
	openEnded     = "present"
)

// datePrefix returns the date column printed before an entry's text, with a
// trailing space, or "" when the section hides every date part.
func datePrefix(e *entry.Entry, opt section.DateOption) string {
	if opt.Has(section.HideAll) {
		return ""
	}

	start, startShown := dateField(e.Time(entry.TimeStart), parts{
		year:  opt.Has(section.HideStartYear),
		month: opt.Has(section.HideStartMonth),
		day:   opt.Has(section.HideStartDay),
	}, opt.Has(section.HideStart), "")
	end, endShown := dateField(e.Time(entry.TimeEnd), parts{
		year:  opt.Has(section.HideEndYear),
		month: opt.Has(section.HideEndMonth),
		day:   opt.Has(section.HideEndDay),
	}, opt.Has(section.HideEnd), openEnded)

	var b strings.Builder
	switch {
	case startShown && endShown:
		b.WriteString(start + dateSeparator + end + " ")
	case startShown || endShown:
		if opt.Has(section.HideEnd) {
			b.WriteString(start + " ")
		} else {
			b.WriteString(start + strings.Repeat(" ", len(dateSeparator)) + end + " ")
		}
	default:
		return ""
	}

	out := b.String()
	if opt.Has(section.HideStart) {
		// drop the blank start column and its separator
		return out[dateWidth+len(dateSeparator):]
	}
	return out
}

// parts marks the hidden parts of one side of a date range.
type parts struct {
	year, month, day bool
}

// dateField formats one side of the range padded to dateWidth. An unset
// timestamp prints unset. A hidden side is blank.
func dateField(ts entry.Timestamp, hide parts, hidden bool, unset string) (string, bool) {
	if hidden {
		return strings.Repeat(" ", dateWidth), false
	}
	s := unset
	if ts.Set {
		s = formatDate(ts, hide)
	}
	if len(s) > dateWidth {
		s = s[:dateWidth]
	}
	return s + strings.Repeat(".", dateWidth-len(s)), len(s) > 0
}

// formatDate prints the parts of ts that hide leaves visible as YYYY-MM-DD.
// The day is only printed after a month.
func formatDate(ts entry.Timestamp, hide parts) string {
	var b strings.Builder
	if !hide.year {
		year := ts.Time.Year()
		if year < 1900 || year > 9999 {
			year = 0
		}
		fmt.Fprintf(&b, "%04d", year)
	}
	if !hide.month {
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%02d", int(ts.Time.Month()))
		if !hide.day {
			fmt.Fprintf(&b, "-%02d", ts.Time.Day())
		}
	}
	return b.String()
}
