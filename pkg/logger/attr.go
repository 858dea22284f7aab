package logger

import (
	"fmt"
	"log/slog"
)

// Error returns an "error" attribute, or an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func WidgetID(id string) slog.Attr {
	return slog.String("widget_id", id)
}

// Mode accepts any value with a String method, such as growl.Mode.
func Mode(m fmt.Stringer) slog.Attr {
	if m == nil {
		return slog.Attr{}
	}
	return slog.String("mode", m.String())
}

func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}
