package interfaces

// Translator resolves a message key for a locale. Args are passed as
// alternating placeholder/value pairs, e.g. ("%iframe", "<iframe>").
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}
