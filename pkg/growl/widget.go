package growl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/growlkit/pkg/logger"
)

// Option configures how widgets are built.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	newID       func() string
	assetBase   string
	defaultType Type
}

// WithLogger sets the logger used to report built widgets.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIDGenerator replaces the container id generator used when Config.ID is empty.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithAssetBaseURL prefixes every asset path.
func WithAssetBaseURL(base string) Option {
	return func(o *options) { o.assetBase = base }
}

// WithDefaultType sets the type used when Config.Type is empty.
func WithDefaultType(t Type) Option {
	return func(o *options) {
		if t.Valid() {
			o.defaultType = t
		}
	}
}

func defaultOptions() *options {
	return &options{
		logger:      logger.Discard(),
		newID:       newID,
		defaultType: TypeInfo,
	}
}

func newID() string {
	return "growl-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Widget is a built notification: its template, client script and assets.
// A Widget is immutable and safe for concurrent use.
type Widget struct {
	id            string
	typ           Type
	mode          Mode
	template      string
	script        string
	pluginVar     string
	settings      Settings
	pluginOptions map[string]any
	polling       *Polling
	assets        Assets
}

// New merges cfg with the defaults and builds the widget.
// Configuration errors are returned before any markup or script is produced.
func New(cfg Config, opts ...Option) (*Widget, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if cfg.Type == "" {
		cfg.Type = o.defaultType
	}
	if !cfg.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, cfg.Type)
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDelay, cfg.Delay)
	}
	if cfg.LinkTarget == "" {
		cfg.LinkTarget = DefaultLinkTarget
	}

	var polling *Polling
	if cfg.Polling != nil {
		p, err := cfg.Polling.Normalize()
		if err != nil {
			return nil, err
		}
		polling = &p
	}

	id := cfg.ID
	if id == "" {
		id = cfg.Options["id"]
	}
	if id == "" {
		id = o.newID()
	}

	el := mergeElements(cfg, id)
	w := &Widget{
		id:       el.container["id"],
		typ:      cfg.Type,
		mode:     modeFor(polling),
		template: renderTemplate(el),
		polling:  polling,
		assets:   assetsFor(cfg.Type, !cfg.DisableAnimation, o.assetBase),
		settings: Settings{
			Message: cfg.Body,
			Icon:    cfg.Icon,
			Title:   cfg.Title,
			URL:     cfg.LinkURL,
			Target:  cfg.LinkTarget,
		},
	}

	w.pluginOptions = make(map[string]any, len(cfg.PluginOptions)+2)
	maps.Copy(w.pluginOptions, cfg.PluginOptions)
	w.pluginOptions["type"] = string(cfg.Type)
	w.pluginOptions["template"] = w.template

	script, err := w.assemble(cfg.Delay)
	if err != nil {
		return nil, err
	}
	w.script = script

	o.logger.Debug("growl widget built",
		logger.WidgetID(w.id),
		logger.Mode(w.mode),
		slog.String("type", w.typ.String()),
	)
	return w, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(cfg Config, opts ...Option) *Widget {
	w, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Widget) assemble(delay int) (string, error) {
	encodedOptions, err := encodeJSON(w.pluginOptions)
	if err != nil {
		return "", err
	}
	settings, err := encodeJSON(w.settings)
	if err != nil {
		return "", err
	}
	w.pluginVar = pluginVariable([]byte(encodedOptions))

	a := assembly{
		pluginVar: w.pluginVar,
		settings:  settings,
		delay:     delay,
	}
	if w.polling != nil {
		a.polling = *w.polling
		if a.data, err = w.polling.encodeData(); err != nil {
			return "", err
		}
	}

	body := w.mode.assembler()(a)
	return "var " + w.pluginVar + " = " + encodedOptions + ";\n" + body, nil
}

// ID returns the container element id.
func (w *Widget) ID() string { return w.id }

// Type returns the alert type.
func (w *Widget) Type() Type { return w.typ }

// Mode returns the script emission mode.
func (w *Widget) Mode() Mode { return w.mode }

// Template returns the HTML template handed to the plugin. Placeholders {0}..{4}
// are left for the plugin to resolve.
func (w *Widget) Template() string { return w.template }

// Script returns the client script: the plugin options declaration followed by the
// notify call or poll loop.
func (w *Widget) Script() string { return w.script }

// PluginVar returns the name of the variable holding the plugin options.
func (w *Widget) PluginVar() string { return w.pluginVar }

// TimerVar returns the window property holding the repeating poll timer.
// It is empty unless Mode is ModeRepeating.
func (w *Widget) TimerVar() string {
	if w.mode != ModeRepeating {
		return ""
	}
	return TimerVar(w.pluginVar)
}

// Settings returns the notify settings.
func (w *Widget) Settings() Settings { return w.settings }

// PluginOptions returns a copy of the plugin options, including type and template.
func (w *Widget) PluginOptions() map[string]any { return maps.Clone(w.pluginOptions) }

// Polling returns the normalized polling spec, or nil in immediate mode.
func (w *Widget) Polling() *Polling {
	if w.polling == nil {
		return nil
	}
	p := *w.polling
	return &p
}

// Assets returns the client files the widget needs.
func (w *Widget) Assets() Assets {
	return Assets{
		Scripts: append([]string(nil), w.assets.Scripts...),
		Styles:  append([]string(nil), w.assets.Styles...),
	}
}

// Register hands the widget's assets and script to v.
func (w *Widget) Register(v View) {
	v.RegisterAssets(w.Assets())
	v.RegisterJS(w.id, w.script)
}

// Component renders the widget script as a ready handler inside a script element.
// Assets are not included; register them through a View.
func (w *Widget) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		_, err := io.WriteString(out, "<script>"+readyWrap(w.script)+"</script>")
		return err
	})
}

func readyWrap(js string) string {
	return "jQuery(function ($) {\n" + js + "\n});"
}
