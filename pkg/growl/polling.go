package growl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// callbackRef matches dotted JavaScript identifier paths such as "onFail" or "app.poll.done".
var callbackRef = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

var pollingMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Normalize validates p and returns a copy with defaults applied.
func (p Polling) Normalize() (Polling, error) {
	p.URL = strings.TrimSpace(p.URL)
	if p.URL == "" {
		return Polling{}, ErrPollingURLRequired
	}

	p.Method = strings.ToUpper(strings.TrimSpace(p.Method))
	if p.Method == "" {
		p.Method = DefaultPollingMethod
	}
	valid := false
	for _, m := range pollingMethods {
		if p.Method == m {
			valid = true
			break
		}
	}
	if !valid {
		return Polling{}, fmt.Errorf("%w: %q", ErrInvalidPollingMethod, p.Method)
	}

	if p.Interval < 0 {
		return Polling{}, fmt.Errorf("%w: %d", ErrInvalidPollingInterval, p.Interval)
	}

	if p.Data != nil && (p.Method == http.MethodGet || p.Method == http.MethodDelete) {
		encoded, err := p.encodeData()
		if err != nil {
			return Polling{}, err
		}
		if encoded != "null" && encoded[0] != '{' && encoded[0] != '"' {
			return Polling{}, fmt.Errorf("%w: %s", ErrInvalidPollingData, encoded)
		}
	}

	for _, ref := range []string{p.SuccessCallback, p.FailCallback} {
		if ref != "" && !callbackRef.MatchString(ref) {
			return Polling{}, fmt.Errorf("%w: %q", ErrInvalidCallback, ref)
		}
	}

	return p, nil
}

// Repeats reports whether the request is issued on an interval.
func (p Polling) Repeats() bool {
	return p.Interval > 0
}

// encodeData returns the JSON form of the payload, or "" when there is none.
func (p Polling) encodeData() (string, error) {
	if p.Data == nil {
		return "", nil
	}
	b, err := json.Marshal(p.Data)
	if err != nil {
		return "", errors.Join(ErrEncodePayload, err)
	}
	return string(b), nil
}
