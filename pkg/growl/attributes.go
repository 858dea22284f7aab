package growl

import (
	"html"
	"slices"
	"strings"
)

// Attributes holds the HTML attributes of one template element.
type Attributes map[string]string

// leadingAttributes are rendered before all other attributes, in this order.
var leadingAttributes = []string{"id", "class", "role", "type"}

var voidElements = []string{"img", "hr", "br", "input"}

// Clone returns a copy of a. A nil map yields an empty, non-nil copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a)+4)
	for k, v := range a {
		out[k] = v
	}
	return out
}

// AddClass appends the space separated class names to the "class" attribute,
// skipping names that are already present.
func (a Attributes) AddClass(classes string) {
	existing := strings.Fields(a["class"])
	for _, c := range strings.Fields(classes) {
		if !slices.Contains(existing, c) {
			existing = append(existing, c)
		}
	}
	if len(existing) > 0 {
		a["class"] = strings.Join(existing, " ")
	}
}

// HasClass reports whether a non-blank class attribute is set.
func (a Attributes) HasClass() bool {
	return strings.TrimSpace(a["class"]) != ""
}

// withDefaults sets every default key that a does not already carry.
func (a Attributes) withDefaults(defaults Attributes) Attributes {
	for k, v := range defaults {
		if _, ok := a[k]; !ok {
			a[k] = v
		}
	}
	return a
}

// withMarkers sets every marker key, replacing caller values.
func (a Attributes) withMarkers(markers Attributes) Attributes {
	for k, v := range markers {
		a[k] = v
	}
	return a
}

// keys returns the attribute names in render order.
func (a Attributes) keys() []string {
	keys := make([]string, 0, len(a))
	for _, k := range leadingAttributes {
		if _, ok := a[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(a))
	for k := range a {
		if !slices.Contains(leadingAttributes, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

// String renders a as ` name="value"` pairs with escaped values.
func (a Attributes) String() string {
	var b strings.Builder
	for _, k := range a.keys() {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[k]))
		b.WriteByte('"')
	}
	return b.String()
}

// tag renders an element with raw inner content. Void elements ignore content.
func tag(name, content string, attrs Attributes) string {
	if slices.Contains(voidElements, name) {
		return "<" + name + attrs.String() + ">"
	}
	return "<" + name + attrs.String() + ">" + content + "</" + name + ">"
}
