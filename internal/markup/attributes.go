package markup

import (
	"html"
	"slices"
	"strings"
)

const classAttribute = "class"

// Attributes is an ordered set of HTML attributes. Each attribute may hold
// several values which are joined with a single space when rendered, as
// class lists are.
type Attributes struct {
	names  []string
	values map[string][]string
}

// NewAttributes returns an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{values: map[string][]string{}}
}

// AddClass appends class values. Values are kept verbatim; empty values and
// exact duplicates are skipped.
func (a *Attributes) AddClass(classes ...string) *Attributes {
	a.track(classAttribute)
	for _, class := range classes {
		if class == "" {
			continue
		}
		a.add(classAttribute, class)
	}
	return a
}

// Set replaces the value of name.
func (a *Attributes) Set(name, value string) *Attributes {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return a
	}
	a.track(name)
	a.values[name] = []string{value}
	return a
}

// Get returns the rendered value of name and whether it is set.
func (a *Attributes) Get(name string) (string, bool) {
	values, ok := a.values[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return strings.Join(values, " "), true
}

// String renders the attributes as ` name="value"` pairs in insertion order.
// An empty class list renders nothing.
func (a *Attributes) String() string {
	if a == nil || len(a.names) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range a.names {
		values := a.values[name]
		value := strings.Join(values, " ")
		if value == "" && name == classAttribute {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}
	return b.String()
}

func (a *Attributes) add(name, value string) {
	a.track(name)
	if slices.Contains(a.values[name], value) {
		return
	}
	a.values[name] = append(a.values[name], value)
}

func (a *Attributes) track(name string) {
	if a.values == nil {
		a.values = map[string][]string{}
	}
	if _, ok := a.values[name]; ok {
		return
	}
	a.names = append(a.names, name)
	a.values[name] = nil
}
