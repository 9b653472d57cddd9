package renderer

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe anchor from heading text: accents are folded,
// letters lowercased and every run of other characters becomes one dash.
func Slugify(input string) string {
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(fold, input)
	if err != nil {
		folded = input
	}
	folded = strings.ToLower(folded)

	var sb strings.Builder
	pendingDash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingDash = false
			sb.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if sb.Len() == 0 {
		return "section"
	}
	return sb.String()
}

// slugSet hands out page-unique anchors.
type slugSet struct {
	next map[string]int
	used map[string]struct{}
}

func newSlugSet() *slugSet {
	return &slugSet{next: make(map[string]int), used: make(map[string]struct{})}
}

func (s *slugSet) unique(base string) string {
	for n := s.next[base]; ; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		if _, taken := s.used[candidate]; taken {
			continue
		}
		s.next[base] = n + 1
		s.used[candidate] = struct{}{}
		return candidate
	}
}
