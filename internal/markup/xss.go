package markup

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// DefaultAllowedTags is the allow list applied by NewXSSFilter. It matches the
// inline formatting tags administrators are trusted with.
var DefaultAllowedTags = []string{
	"a",
	"em",
	"strong",
	"cite",
	"blockquote",
	"code",
	"ul", "ol", "li",
	"dl", "dt", "dd",
}

// XSSFilter strips disallowed elements and attributes from a string. Content
// of script and style elements is dropped entirely and text is entity
// escaped, so the result never carries executable markup.
type XSSFilter struct {
	policy *bluemonday.Policy
}

// NewXSSFilter builds a filter allowing DefaultAllowedTags, or allowedTags
// when supplied.
func NewXSSFilter(allowedTags ...string) *XSSFilter {
	if len(allowedTags) == 0 {
		allowedTags = DefaultAllowedTags
	}
	return &XSSFilter{policy: xssPolicy(allowedTags)}
}

// Filter returns input with disallowed markup removed. It is safe for
// concurrent use.
func (f *XSSFilter) Filter(input string) string {
	if f == nil || f.policy == nil || input == "" {
		return input
	}
	return f.policy.Sanitize(input)
}

var _ interfaces.XSSFilter = (*XSSFilter)(nil)

func xssPolicy(allowedTags []string) *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardURLs()
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("cite").OnElements("blockquote")

	policy.AllowElements(allowedTags...)

	return policy
}
