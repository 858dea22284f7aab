package growl

import (
	"fmt"
	"strings"
)

// Type is the alert style passed to the plugin as its "type" option.
type Type string

const (
	TypeInfo       Type = "info"
	TypeDanger     Type = "danger"
	TypeSuccess    Type = "success"
	TypeWarning    Type = "warning"
	TypeGrowl      Type = "growl"
	TypeMinimalist Type = "minimalist"
	TypePastel     Type = "pastel"
	TypeCustom     Type = "custom"
)

// Types lists every supported alert type.
var Types = []Type{
	TypeInfo,
	TypeDanger,
	TypeSuccess,
	TypeWarning,
	TypeGrowl,
	TypeMinimalist,
	TypePastel,
	TypeCustom,
}

// ParseType converts s to a Type. An empty string yields TypeInfo.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return TypeInfo, nil
	}
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeDanger, TypeSuccess, TypeWarning,
		TypeGrowl, TypeMinimalist, TypePastel, TypeCustom:
		return true
	}
	return false
}

// IsTheme reports whether t needs its own theme stylesheet.
func (t Type) IsTheme() bool {
	switch t {
	case TypeGrowl, TypeMinimalist, TypePastel:
		return true
	case TypeInfo, TypeDanger, TypeSuccess, TypeWarning, TypeCustom:
		return false
	}
	return false
}

func (t Type) String() string { return string(t) }

// UnmarshalText implements encoding.TextUnmarshaler so that config files are validated on decode.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
