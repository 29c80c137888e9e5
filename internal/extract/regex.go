package extract

import (
	"regexp"
	"sync"
)

var (
	wordRegexMu    sync.Mutex
	wordRegexCache = make(map[string]*regexp.Regexp)
)

// wordRegex returns a cached case-insensitive whole-word matcher for term.
// Terms come from fixed tables and user-defined names, so the cache stays
// small and is shared across requests.
func wordRegex(term string) *regexp.Regexp {
	wordRegexMu.Lock()
	defer wordRegexMu.Unlock()

	if re, ok := wordRegexCache[term]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	wordRegexCache[term] = re
	return re
}
