package extract

import (
	"testing"
	"time"

	"github.com/arthasage/arthasage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestDates_Relative(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "today", text: "what did I spend today", want: "2025-06-15"},
		{name: "now", text: "add it now", want: "2025-06-15"},
		{name: "yesterday", text: "dinner yesterday", want: "2025-06-14"},
		{name: "tomorrow", text: "remind me tomorrow", want: "2025-06-16"},
		{name: "n days ago", text: "taxi 3 days ago", want: "2025-06-12"},
		{name: "last week", text: "groceries last week", want: "2025-06-08"},
		{name: "next week", text: "rent due next week", want: "2025-06-22"},
		{name: "last month", text: "expenses last month", want: "2025-05-16"},
		{name: "this month", text: "spending this month", want: "2025-06-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dates(tt.text, fixedNow)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0].Value)
			assert.Equal(t, model.DateRelative, got[0].Kind)
		})
	}
}

func TestDates_Absolute(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantNone bool
	}{
		{name: "slash format", text: "movie on 12/03/2025", want: "2025-03-12"},
		{name: "dash format", text: "paid on 01-11-2024", want: "2024-11-01"},
		{name: "day too large", text: "on 32/01/2025", wantNone: true},
		{name: "month too large", text: "on 12/13/2025", wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dates(tt.text, fixedNow)
			if tt.wantNone {
				assert.Empty(t, got)
				return
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.want, got[0].Value)
			assert.Equal(t, model.DateAbsolute, got[0].Kind)
		})
	}
}

func TestDates_NoMatchIsEmptyNotError(t *testing.T) {
	assert.Empty(t, Dates("show me my budgets", fixedNow))
}

func TestDates_WordBoundaries(t *testing.T) {
	// "now" inside "know" must not resolve to a date.
	assert.Empty(t, Dates("I know the answer", fixedNow))
}
