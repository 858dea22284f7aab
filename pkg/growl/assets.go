package growl

import (
	"net/url"
	"strings"
)

// Asset paths relative to the configured base URL.
const (
	ScriptBundle    = "js/bootstrap-notify.min.js"
	StyleBundle     = "css/kv-bootstrap-notify.min.css"
	AnimateStyle    = "css/animate.min.css"
	themeStylesPath = "css/themes/"
)

// Assets lists the client files a widget depends on.
type Assets struct {
	Scripts []string
	Styles  []string
}

// assetsFor selects the bundle files for the widget type.
func assetsFor(t Type, animate bool, baseURL string) Assets {
	a := Assets{
		Scripts: []string{assetURL(baseURL, ScriptBundle)},
		Styles:  []string{assetURL(baseURL, StyleBundle)},
	}
	if t.IsTheme() {
		a.Styles = append(a.Styles, assetURL(baseURL, themeStylesPath+string(t)+".css"))
	}
	if animate {
		a.Styles = append(a.Styles, assetURL(baseURL, AnimateStyle))
	}
	return a
}

func assetURL(baseURL, path string) string {
	if baseURL == "" {
		return path
	}
	if u, err := url.JoinPath(baseURL, path); err == nil {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + path
}
