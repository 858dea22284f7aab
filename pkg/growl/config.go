package growl

// Default values applied while building a widget.
const (
	DefaultLinkTarget       = "_blank"
	DefaultCloseButtonTag   = "button"
	DefaultCloseButtonLabel = "&times;"
	DefaultPollingMethod    = "GET"
)

// Config describes one notification widget.
type Config struct {
	// ID of the container element. Generated when empty.
	ID string `yaml:"id" json:"id,omitempty"`

	Type       Type   `yaml:"type" json:"type,omitempty"`
	Icon       string `yaml:"icon" json:"icon,omitempty"`
	Title      string `yaml:"title" json:"title,omitempty"`
	Body       string `yaml:"body" json:"body,omitempty"`
	LinkURL    string `yaml:"link_url" json:"link_url,omitempty"`
	LinkTarget string `yaml:"link_target" json:"link_target,omitempty"`

	// ShowSeparator renders a rule between title and body. Ignored when Title is empty.
	ShowSeparator bool `yaml:"show_separator" json:"show_separator,omitempty"`

	// Delay in milliseconds before the notification is displayed.
	Delay int `yaml:"delay" json:"delay,omitempty"`

	// DisableAnimation drops the animate.css dependency.
	DisableAnimation bool `yaml:"disable_animation" json:"disable_animation,omitempty"`

	Options                  Attributes   `yaml:"options" json:"options,omitempty"`
	IconOptions              Attributes   `yaml:"icon_options" json:"icon_options,omitempty"`
	TitleOptions             Attributes   `yaml:"title_options" json:"title_options,omitempty"`
	BodyOptions              Attributes   `yaml:"body_options" json:"body_options,omitempty"`
	ProgressContainerOptions Attributes   `yaml:"progress_container_options" json:"progress_container_options,omitempty"`
	ProgressBar              ProgressBar  `yaml:"progress_bar" json:"progress_bar,omitempty"`
	LinkOptions              Attributes   `yaml:"link_options" json:"link_options,omitempty"`
	CloseButton              *CloseButton `yaml:"close_button" json:"close_button,omitempty"`

	Polling *Polling `yaml:"polling" json:"polling,omitempty"`

	// PluginOptions are passed to the plugin untouched, except "type" and "template"
	// which are always set by the builder.
	PluginOptions map[string]any `yaml:"plugin_options" json:"plugin_options,omitempty"`
}

// ProgressBar configures the inner progress bar element.
type ProgressBar struct {
	// Title is rendered as the bar's label.
	Title      string     `yaml:"title" json:"title,omitempty"`
	Attributes Attributes `yaml:"attributes" json:"attributes,omitempty"`
}

// CloseButton configures the dismiss control.
// A nil *CloseButton in Config renders the default button.
type CloseButton struct {
	// Hidden suppresses the dismiss control entirely.
	Hidden     bool       `yaml:"hidden" json:"hidden,omitempty"`
	Tag        string     `yaml:"tag" json:"tag,omitempty"`
	Label      string     `yaml:"label" json:"label,omitempty"`
	Attributes Attributes `yaml:"attributes" json:"attributes,omitempty"`
}

// NoCloseButton returns a CloseButton that renders nothing.
func NoCloseButton() *CloseButton {
	return &CloseButton{Hidden: true}
}

// Polling configures an AJAX request whose response carries notifications.
type Polling struct {
	URL    string `yaml:"url" json:"url"`
	Method string `yaml:"method" json:"method,omitempty"`

	// Data is sent as the request payload, encoded as JSON.
	Data any `yaml:"data" json:"data,omitempty"`

	// SuccessCallback and FailCallback reference client functions, e.g. "app.onPoll".
	// The success callback receives (response, settings); the fail callback is passed to
	// jqXHR.fail.
	SuccessCallback string `yaml:"success_callback" json:"success_callback,omitempty"`
	FailCallback    string `yaml:"fail_callback" json:"fail_callback,omitempty"`

	// Interval in milliseconds between requests. Zero issues a single request.
	Interval int `yaml:"interval" json:"interval,omitempty"`
}

// Settings is the first argument of the client notify call.
type Settings struct {
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Target  string `json:"target"`
}

// PollResponse is the JSON document a polling endpoint returns.
type PollResponse struct {
	Success       bool        `json:"success"`
	Notifications []PollEntry `json:"notifications"`
}

// PollEntry is one notification in a PollResponse.
type PollEntry struct {
	Body  string `json:"body"`
	Title string `json:"title"`
	Show  bool   `json:"show"`
}

// Apply returns a copy of s carrying the entry's body and title.
func (e PollEntry) Apply(s Settings) Settings {
	s.Message = e.Body
	s.Title = e.Title
	return s
}
