package intent

import (
	"regexp"
	"strconv"
	"time"

	"github.com/arthasage/arthasage/internal/extract"
	"github.com/arthasage/arthasage/internal/model"
)

var (
	amountOverRegex    = regexp.MustCompile(`(?:over|above|more than|greater than)\s+(?:₹|rs\.?\s*|\$)?(\d+(?:\.\d+)?)`)
	amountUnderRegex   = regexp.MustCompile(`(?:under|below|less than)\s+(?:₹|rs\.?\s*|\$)?(\d+(?:\.\d+)?)`)
	amountBetweenRegex = regexp.MustCompile(`between\s+(?:₹|rs\.?\s*|\$)?(\d+(?:\.\d+)?)\s+and\s+(?:₹|rs\.?\s*|\$)?(\d+(?:\.\d+)?)`)
	limitRegex         = regexp.MustCompile(`(?:last|top|first|recent)\s+(\d+)`)
)

// Relative periods resolved against the current date. From/To are day
// offsets; month-shaped periods snap to calendar boundaries below.
var relativePeriods = []struct {
	Phrase   string
	FromDays int
	ToDays   int
}{
	{"yesterday", -1, -1},
	{"last week", -7, 0},
	{"this week", -7, 0},
	{"today", 0, 0},
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// extractFilters pulls amount, date-range, category, and limit filters out
// of a retrieval or analysis message.
func (c *Classifier) extractFilters(msg string) model.Filters {
	var f model.Filters

	if m := amountBetweenRegex.FindStringSubmatch(msg); m != nil {
		minV, _ := strconv.ParseFloat(m[1], 64)
		maxV, _ := strconv.ParseFloat(m[2], 64)
		f.AmountMin = &minV
		f.AmountMax = &maxV
	} else {
		if m := amountOverRegex.FindStringSubmatch(msg); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			f.AmountMin = &v
		}
		if m := amountUnderRegex.FindStringSubmatch(msg); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			f.AmountMax = &v
		}
	}

	f.DateFrom, f.DateTo = c.extractDateRange(msg)
	f.Category = extract.SemanticCategoryFor(msg)

	if m := limitRegex.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			f.Limit = n
		}
	}

	return f
}

func (c *Classifier) extractDateRange(msg string) (from, to string) {
	now := c.now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	switch {
	case containsWord(msg, "this month"):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start.Format("2006-01-02"), day(0)
	case containsWord(msg, "last month"):
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
		return start.Format("2006-01-02"), end.Format("2006-01-02")
	case containsWord(msg, "this year"):
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start.Format("2006-01-02"), day(0)
	}

	for _, p := range relativePeriods {
		if containsWord(msg, p.Phrase) {
			return day(p.FromDays), day(p.ToDays)
		}
	}

	for i, name := range monthNames {
		if !containsWord(msg, name) {
			continue
		}
		month := time.Month(i + 1)
		year := now.Year()
		// A named month later than the current one refers to last year.
		if month > now.Month() {
			year--
		}
		start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, -1)
		return start.Format("2006-01-02"), end.Format("2006-01-02")
	}

	return "", ""
}
