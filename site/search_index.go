package site

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	searchIndexVersion = 3
	maxPositionsPerDoc = 48
)

var searchIndexFields = []string{"title", "summary", "content"}

// searchPayload is the compact client-side index: one row per page and a
// base36-encoded posting list per term.
type searchPayload struct {
	Version         int               `json:"v"`
	DocCount        int               `json:"c"`
	Fields          []string          `json:"f"`
	AvgFieldLengths []int             `json:"a"`
	Docs            [][]string        `json:"d"`
	Terms           map[string]string `json:"t"`
}

type posting struct {
	doc       int
	title     int
	summary   int
	content   int
	positions []int
}

type searchIndexBuilder struct {
	docs     [][]string
	postings map[string][]*posting
	lengths  [3]int
}

func newSearchIndexBuilder(capacity int) *searchIndexBuilder {
	return &searchIndexBuilder{
		docs:     make([][]string, 0, capacity),
		postings: make(map[string][]*posting, capacity*16),
	}
}

func (b *searchIndexBuilder) add(url string, pg *Page) {
	docID := len(b.docs)
	terms := make(map[string]*posting, 64)
	entry := func(token string) *posting {
		p := terms[token]
		if p == nil {
			p = &posting{doc: docID}
			terms[token] = p
		}
		return p
	}

	titleLen := tokenize(pg.Title, func(token string) { entry(token).title++ })
	summaryLen := tokenize(pg.Summary, func(token string) { entry(token).summary++ })
	position := 0
	contentLen := tokenize(pg.PlainText, func(token string) {
		p := entry(token)
		p.content++
		if len(p.positions) < maxPositionsPerDoc {
			p.positions = append(p.positions, position)
		}
		position++
	})

	b.lengths[0] += titleLen
	b.lengths[1] += summaryLen
	b.lengths[2] += contentLen
	lengths := encodeInt(titleLen) + "," + encodeInt(summaryLen) + "," + encodeInt(contentLen)
	b.docs = append(b.docs, []string{url, pg.Title, pg.Summary, lengths})

	for term, p := range terms {
		b.postings[term] = append(b.postings[term], p)
	}
}

func (b *searchIndexBuilder) payload() searchPayload {
	count := len(b.docs)
	avg := make([]int, len(b.lengths))
	if count > 0 {
		for i, sum := range b.lengths {
			avg[i] = int(math.Round(float64(sum*100) / float64(count)))
		}
	}

	terms := make(map[string]string, len(b.postings))
	for term, list := range b.postings {
		sort.Slice(list, func(i, j int) bool { return list[i].doc < list[j].doc })
		terms[term] = encodePostings(list)
	}

	return searchPayload{
		Version:         searchIndexVersion,
		DocCount:        count,
		Fields:          append([]string(nil), searchIndexFields...),
		AvgFieldLengths: avg,
		Docs:            b.docs,
		Terms:           terms,
	}
}

// buildSearchIndex indexes pages in reading order; links are resolved from
// the output root where the index file is stored.
func buildSearchIndex(pages []*Page, link LinkFunc) ([]byte, error) {
	builder := newSearchIndexBuilder(len(pages))
	for _, pg := range pages {
		url, err := link(pg)
		if err != nil {
			return nil, err
		}
		builder.add(url, pg)
	}
	return json.Marshal(builder.payload())
}

// tokenize folds text to lowercase accent-free words and reports how many
// were indexed.
func tokenize(text string, apply func(string)) int {
	if text == "" {
		return 0
	}
	var word strings.Builder
	count := 0
	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := word.String()
		word.Reset()
		if indexable(token) {
			apply(token)
			count++
		}
	}
	for _, r := range norm.NFKD.String(text) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word.WriteRune(unicode.ToLower(r))
		default:
			flush()
		}
	}
	flush()
	return count
}

// indexable drops single letters; single digits are kept.
func indexable(token string) bool {
	if token == "" {
		return false
	}
	if len(token) == 1 {
		return token[0] >= '0' && token[0] <= '9'
	}
	return true
}

func encodePostings(list []*posting) string {
	var sb strings.Builder
	sb.Grow(len(list) * 12)
	sb.WriteString(encodeInt(len(list)))
	sb.WriteByte('|')
	for i, p := range list {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(encodeInt(p.doc))
		for _, v := range []int{p.title, p.summary, p.content} {
			sb.WriteByte(':')
			sb.WriteString(encodeInt(v))
		}
		if len(p.positions) > 0 {
			sb.WriteByte(':')
			sb.WriteString(encodeDeltas(p.positions))
		}
	}
	return sb.String()
}

// encodeDeltas writes positions as dot-separated gaps from the previous one.
func encodeDeltas(positions []int) string {
	parts := make([]string, len(positions))
	prev := 0
	for i, pos := range positions {
		parts[i] = encodeInt(pos - prev)
		prev = pos
	}
	return strings.Join(parts, ".")
}

func encodeInt(value int) string {
	return strconv.FormatInt(int64(value), 36)
}
