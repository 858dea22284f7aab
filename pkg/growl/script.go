package growl

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"
)

// Mode is the script emission strategy of a widget.
type Mode int

const (
	// ModeImmediate shows the configured notification once, optionally after Delay.
	ModeImmediate Mode = iota
	// ModeOneShot issues a single poll request.
	ModeOneShot
	// ModeRepeating issues a poll request at setup and then every Polling.Interval.
	ModeRepeating
)

func (m Mode) String() string {
	switch m {
	case ModeImmediate:
		return "immediate"
	case ModeOneShot:
		return "one-shot"
	case ModeRepeating:
		return "repeating"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// modeFor resolves the emission mode from a normalized polling spec.
func modeFor(p *Polling) Mode {
	switch {
	case p == nil:
		return ModeImmediate
	case p.Repeats():
		return ModeRepeating
	default:
		return ModeOneShot
	}
}

// assembly carries the encoded inputs of a script.
type assembly struct {
	pluginVar string
	settings  string
	delay     int
	polling   Polling
	data      string
}

// assembler emits the script body for one mode.
type assembler func(a assembly) string

func (m Mode) assembler() assembler {
	switch m {
	case ModeOneShot:
		return assembleOneShot
	case ModeRepeating:
		return assembleRepeating
	case ModeImmediate:
		return assembleImmediate
	}
	return assembleImmediate
}

func assembleImmediate(a assembly) string {
	js := "$.notify(" + a.settings + ", " + a.pluginVar + ");"
	if a.delay > 0 {
		js = "setTimeout(function () {" + js + "}, " + strconv.Itoa(a.delay) + ");"
	}
	return js
}

func assembleOneShot(a assembly) string {
	return ajaxCall(a) + ";"
}

func assembleRepeating(a assembly) string {
	var b strings.Builder
	b.WriteString("(function () {\n")
	b.WriteString("var poll = function () {\n")
	b.WriteString(ajaxCall(a))
	b.WriteString(";\n};\n")
	b.WriteString("poll();\n")
	fmt.Fprintf(&b, "window.%s = setInterval(poll, %d);\n", TimerVar(a.pluginVar), a.polling.Interval)
	b.WriteString("})();")
	return b.String()
}

// ajaxCall emits one poll cycle. Every shown entry gets its own copy of the base
// settings so that one entry's title or body never leaks into another notification.
func ajaxCall(a assembly) string {
	p := a.polling
	var b strings.Builder
	b.WriteString("$.ajax({\n")
	fmt.Fprintf(&b, "url: %s,\n", jsString(p.URL))
	fmt.Fprintf(&b, "method: %s", jsString(p.Method))
	if a.data != "" {
		fmt.Fprintf(&b, ",\ndata: %s", a.data)
	}
	b.WriteString("\n}).done(function (data) {\n")
	b.WriteString("if (!data || !data.success) {\nreturn;\n}\n")
	fmt.Fprintf(&b, "var base = %s;\n", a.settings)
	if p.SuccessCallback != "" {
		fmt.Fprintf(&b, "%s.call(this, data, base);\n", p.SuccessCallback)
	}
	b.WriteString("var notifications = data.notifications || [];\n")
	b.WriteString("for (var i = 0; i < notifications.length; i++) {\n")
	b.WriteString("var entry = notifications[i];\n")
	b.WriteString("if (!entry.show) {\ncontinue;\n}\n")
	b.WriteString("var settings = $.extend({}, base, {message: entry.body, title: entry.title});\n")
	fmt.Fprintf(&b, "$.notify(settings, %s);\n", a.pluginVar)
	b.WriteString("}\n})")
	if p.FailCallback != "" {
		fmt.Fprintf(&b, ".fail(%s)", p.FailCallback)
	}
	return b.String()
}

// TimerVar is the window property holding the interval handle of a repeating widget.
// Passing window[TimerVar(pluginVar)] to clearInterval stops further polling.
func TimerVar(pluginVar string) string {
	return pluginVar + "_timer"
}

// pluginVariable names the JavaScript variable holding the encoded plugin options.
func pluginVariable(encoded []byte) string {
	return fmt.Sprintf("growl_%08x", crc32.ChecksumIEEE(encoded))
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Join(ErrEncodePayload, err)
	}
	return string(b), nil
}

// jsString quotes s as a JavaScript string literal safe to embed in a script element.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
