package site

import "strings"

const (
	summaryLimit     = 200
	descriptionLimit = 160
)

func summarize(plain string) string {
	plain = strings.TrimSpace(plain)
	if plain == "" {
		return ""
	}
	runes := []rune(plain)
	if len(runes) <= summaryLimit {
		return plain
	}
	return string(runes[:summaryLimit]) + "..."
}

func metaDescription(summary, fallback string) string {
	text := strings.TrimSpace(summary)
	if text == "" {
		text = strings.TrimSpace(fallback)
	}
	if text == "" {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= descriptionLimit {
		return text
	}
	return string(runes[:descriptionLimit-1]) + "..."
}
