package renderer

import (
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

type minifier interface {
	Bytes(mediatype string, v []byte) ([]byte, error)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return m
}

// MinifyHTML optimizes a full HTML document. It is a no-op unless the
// renderer was built with minification enabled.
func (r *Renderer) MinifyHTML(raw []byte) ([]byte, error) {
	if r.minifier == nil {
		return raw, nil
	}
	return r.minifier.Bytes("text/html", raw)
}
