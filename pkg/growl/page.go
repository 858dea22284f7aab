package growl

import (
	"context"
	"html"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// View receives the client dependencies of widgets rendered into a page.
type View interface {
	RegisterAssets(a Assets)
	// RegisterJS registers a script under key. A later script with the same key replaces it.
	RegisterJS(key, js string)
}

// Page collects assets and scripts of the widgets rendered during one request.
type Page struct {
	mu      sync.Mutex
	scripts []string
	styles  []string
	keys    []string
	js      map[string]string
}

// NewPage returns an empty Page.
func NewPage() *Page {
	return &Page{js: make(map[string]string)}
}

// RegisterAssets adds files not registered yet, keeping registration order.
func (p *Page) RegisterAssets(a Assets) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range a.Scripts {
		if !slices.Contains(p.scripts, s) {
			p.scripts = append(p.scripts, s)
		}
	}
	for _, s := range a.Styles {
		if !slices.Contains(p.styles, s) {
			p.styles = append(p.styles, s)
		}
	}
}

// RegisterJS implements View.
func (p *Page) RegisterJS(key, js string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.js[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.js[key] = js
}

// Add builds a widget from cfg and registers it.
func (p *Page) Add(cfg Config, opts ...Option) (*Widget, error) {
	w, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	w.Register(p)
	return w, nil
}

// Assets returns the registered files.
func (p *Page) Assets() Assets {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Assets{
		Scripts: slices.Clone(p.scripts),
		Styles:  slices.Clone(p.styles),
	}
}

// JS returns the registered scripts in registration order.
func (p *Page) JS() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.js[k])
	}
	return out
}

// Head renders the stylesheet links.
func (p *Page) Head() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, href := range p.Assets().Styles {
			b.WriteString(`<link rel="stylesheet" href="` + html.EscapeString(href) + `">` + "\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Scripts renders the script files followed by one ready handler running every
// registered script. It renders nothing when no script is registered.
func (p *Page) Scripts() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		js := p.JS()
		if len(js) == 0 {
			return nil
		}
		var b strings.Builder
		for _, src := range p.Assets().Scripts {
			b.WriteString(`<script src="` + html.EscapeString(src) + `"></script>` + "\n")
		}
		b.WriteString("<script>" + readyWrap(strings.Join(js, "\n")) + "</script>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
