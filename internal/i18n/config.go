package i18n

import "strings"

// Config selects the locale used when a lookup misses every other candidate.
type Config struct {
	DefaultLocale string `json:"default_locale"`
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), "_", "-")
}

// candidates returns the lookup chain for locale: the locale itself, its
// regional parent, then the default locale.
func (c Config) candidates(locale string) []string {
	out := make([]string, 0, 3)
	seen := map[string]struct{}{}
	push := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	locale = normalizeLocale(locale)
	push(locale)
	if idx := strings.IndexByte(locale, '-'); idx > 0 {
		push(locale[:idx])
	}
	push(normalizeLocale(c.DefaultLocale))
	return out
}
