package i18n

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-responsive-iframe/pkg/interfaces"
)

// Catalog is an in-memory translator keyed by locale then source string.
type Catalog struct {
	config   Config
	messages map[string]map[string]string
}

// NewCatalog builds a catalog from a fixture. A nil fixture yields a catalog
// that only formats placeholders.
func NewCatalog(fixture *Fixture) *Catalog {
	catalog := &Catalog{messages: map[string]map[string]string{}}
	if fixture == nil {
		return catalog
	}
	catalog.config = fixture.Config
	for locale, entries := range fixture.Translations {
		key := normalizeLocale(locale)
		if catalog.messages[key] == nil {
			catalog.messages[key] = make(map[string]string, len(entries))
		}
		for source, translated := range entries {
			catalog.messages[key][source] = translated
		}
	}
	return catalog
}

// Translate looks key up for locale, its regional parent and the default
// locale, then substitutes placeholders. Missing keys fall back to the key.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	message := key
	if c != nil {
		for _, candidate := range c.config.candidates(locale) {
			if translated, ok := c.messages[candidate][key]; ok && translated != "" {
				message = translated
				break
			}
		}
	}
	return FormatPlaceholders(message, args...)
}

var _ interfaces.Translator = (*Catalog)(nil)

// NoOpTranslator returns the key with placeholders substituted.
func NoOpTranslator() interfaces.Translator {
	return noopTranslator{}
}

type noopTranslator struct{}

func (noopTranslator) Translate(_ string, key string, args ...any) (string, error) {
	return FormatPlaceholders(key, args...)
}

// Translate is a convenience that falls back to key when translation fails.
func Translate(translator interfaces.Translator, locale, key string, args ...any) string {
	if translator == nil {
		translator = NoOpTranslator()
	}
	out, err := translator.Translate(locale, key, args...)
	if err != nil {
		return key
	}
	return out
}

// FormatPlaceholders replaces placeholders in template. Args are alternating
// placeholder/value pairs. The placeholder prefix selects the rendering:
//
//	%name  <em class="placeholder">escaped value</em>
//	@name  escaped value
//	:name  escaped value
//
// Longer placeholders win over shorter ones sharing a prefix.
func FormatPlaceholders(template string, args ...any) (string, error) {
	if len(args) == 0 {
		return template, nil
	}
	if len(args)%2 != 0 {
		return template, fmt.Errorf("i18n: placeholder arguments must be pairs, got %d values", len(args))
	}

	type pair struct{ placeholder, value string }
	pairs := make([]pair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		placeholder, ok := args[i].(string)
		if !ok || len(placeholder) < 2 {
			return template, fmt.Errorf("i18n: invalid placeholder %v", args[i])
		}
		value := html.EscapeString(fmt.Sprint(args[i+1]))
		switch placeholder[0] {
		case '%':
			value = `<em class="placeholder">` + value + `</em>`
		case '@', ':':
		default:
			return template, fmt.Errorf("i18n: unsupported placeholder prefix in %q", placeholder)
		}
		pairs = append(pairs, pair{placeholder: placeholder, value: value})
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].placeholder) > len(pairs[j].placeholder)
	})
	oldnew := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		oldnew = append(oldnew, p.placeholder, p.value)
	}
	return strings.NewReplacer(oldnew...).Replace(template), nil
}
