package iframe

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-responsive-iframe/internal/markup"
	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// iframePattern captures the opening tag attributes and the body of an
// iframe. The body match is lazy and spans newlines.
var iframePattern = regexp.MustCompile(`(?s)<iframe([^>]*)>(.*?)</iframe>`)

var defaultXSS = markup.NewXSSFilter()

// Wrap wraps every iframe in text with the container described by cfg. The
// wrapper element is passed through xss first; a nil xss uses the default
// filter. Text outside iframes is returned unchanged.
func Wrap(text string, cfg Config, xss interfaces.XSSFilter) string {
	return newWrapper(cfg, xss).apply(text)
}

// Transform is Wrap with the default XSS filter. The langcode is accepted for
// parity with the filter pipeline and is not used.
func Transform(text string, langcode string, cfg Config) string {
	return Wrap(text, cfg, nil)
}

type wrapper struct {
	element string
	open    string
	close   string
}

func newWrapper(cfg Config, xss interfaces.XSSFilter) wrapper {
	if xss == nil {
		xss = defaultXSS
	}
	element := xss.Filter(cfg.WrapperElement)
	attrs := markup.NewAttributes().AddClass(cfg.WrapperClasses)
	return wrapper{
		element: element,
		open:    "<" + element + attrs.String() + ">",
		close:   "</" + element + ">",
	}
}

func (w wrapper) apply(text string) string {
	if !strings.Contains(text, "<iframe") {
		return text
	}

	matches := iframePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*(len(w.open)+len(w.close)))

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(w.open)
		b.WriteString("<iframe")
		b.WriteString(text[m[2]:m[3]])
		b.WriteByte('>')
		b.WriteString(text[m[4]:m[5]])
		b.WriteString("</iframe>")
		b.WriteString(w.close)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
