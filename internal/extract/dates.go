package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/arthasage/arthasage/internal/model"
)

// relativeDates maps phrases to day offsets from the current date.
// Longer phrases are listed first so "last week" wins over bare "week"
// style overlaps.
var relativeDates = []struct {
	Phrase string
	Offset int
}{
	{"day before yesterday", -2},
	{"yesterday", -1},
	{"tomorrow", 1},
	{"last week", -7},
	{"next week", 7},
	{"last month", -30},
	{"this month", 0},
	{"today", 0},
	{"now", 0},
}

var (
	daysAgoRegex      = regexp.MustCompile(`(?i)\b(\d+)\s+days?\s+ago\b`)
	absoluteDateRegex = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
)

// Dates scans text for date mentions, resolving relative phrases against
// now and normalizing everything to YYYY-MM-DD. Calendar-invalid absolute
// dates are silently dropped.
func Dates(text string, now time.Time) []model.DateEntity {
	lower := strings.ToLower(text)
	entities := make([]model.DateEntity, 0, 1)

	for _, rd := range relativeDates {
		idx := strings.Index(lower, rd.Phrase)
		if idx < 0 {
			continue
		}
		if !wholeWordAt(lower, idx, len(rd.Phrase)) {
			continue
		}
		entities = append(entities, model.DateEntity{
			Value:    now.AddDate(0, 0, rd.Offset).Format("2006-01-02"),
			Kind:     model.DateRelative,
			Position: idx,
		})
	}

	for _, m := range daysAgoRegex.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		entities = append(entities, model.DateEntity{
			Value:    now.AddDate(0, 0, -n).Format("2006-01-02"),
			Kind:     model.DateRelative,
			Position: m[0],
		})
	}

	for _, m := range absoluteDateRegex.FindAllStringSubmatchIndex(text, -1) {
		day, _ := strconv.Atoi(text[m[2]:m[3]])
		month, _ := strconv.Atoi(text[m[4]:m[5]])
		year, _ := strconv.Atoi(text[m[6]:m[7]])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			continue
		}
		entities = append(entities, model.DateEntity{
			Value:    time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Kind:     model.DateAbsolute,
			Position: m[0],
		})
	}

	return entities
}

// wholeWordAt reports whether the span [idx, idx+length) sits on word
// boundaries within s.
func wholeWordAt(s string, idx, length int) bool {
	if idx > 0 && isWordByte(s[idx-1]) {
		return false
	}
	end := idx + length
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
