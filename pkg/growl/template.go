package growl

import "strings"

// Plugin placeholders resolved by the client at display time.
const (
	placeholderType   = "{0}"
	placeholderTitle  = "{1}"
	placeholderBody   = "{2}"
	placeholderURL    = "{3}"
	placeholderTarget = "{4}"
)

const separatorMarkup = `<hr class="kv-alert-separator">` + "\n"

var progressBarDefaults = Attributes{
	"role":          "progressbar",
	"aria-valuenow": "0",
	"aria-valuemin": "0",
	"aria-valuemax": "100",
	"style":         "width:100%",
}

// elements is the merged attribute set of every template slot.
type elements struct {
	container         Attributes
	icon              Attributes
	title             Attributes
	body              Attributes
	progressContainer Attributes
	progressBar       Attributes
	link              Attributes
	closeButton       *closeButton

	iconTag       string
	progressTitle string
	separator     bool
}

type closeButton struct {
	tag   string
	label string
	attrs Attributes
}

// mergeElements unions caller attributes with the builder defaults.
// Marker attributes always replace caller values so the plugin can find each slot.
func mergeElements(cfg Config, id string) elements {
	el := elements{
		icon:    cfg.IconOptions.Clone().withMarkers(Attributes{"data-notify": "icon"}),
		title:   cfg.TitleOptions.Clone().withMarkers(Attributes{"data-notify": "title"}),
		body:    cfg.BodyOptions.Clone().withMarkers(Attributes{"data-notify": "message"}),
		iconTag: iconTag(cfg.PluginOptions),
		link: cfg.LinkOptions.Clone().withMarkers(Attributes{
			"data-notify": "url",
			"href":        placeholderURL,
			"target":      placeholderTarget,
		}),
		separator: cfg.ShowSeparator && cfg.Title != "",
	}

	el.container = cfg.Options.Clone()
	el.container["id"] = id
	if el.container.HasClass() {
		el.container.AddClass("alert alert-" + placeholderType)
	} else {
		el.container["class"] = "col-xs-11 col-sm-3 alert alert-" + placeholderType
	}
	el.container.withMarkers(Attributes{"role": "alert", "data-notify": "container"})

	el.progressContainer = cfg.ProgressContainerOptions.Clone()
	class := "progress"
	if !el.progressContainer.HasClass() {
		class += " kv-progress-bar"
	}
	el.progressContainer.AddClass(class)
	el.progressContainer.withMarkers(Attributes{"data-notify": "progressbar"})

	el.progressBar = cfg.ProgressBar.Attributes.Clone()
	el.progressTitle = cfg.ProgressBar.Title
	if t, ok := el.progressBar["title"]; ok {
		if el.progressTitle == "" {
			el.progressTitle = t
		}
		delete(el.progressBar, "title")
	}
	el.progressBar.withDefaults(progressBarDefaults)
	el.progressBar.AddClass("progress-bar progress-bar-" + placeholderType)

	el.closeButton = mergeCloseButton(cfg.CloseButton)
	return el
}

func mergeCloseButton(cb *CloseButton) *closeButton {
	if cb == nil {
		cb = &CloseButton{}
	}
	if cb.Hidden {
		return nil
	}
	out := &closeButton{
		tag:   cb.Tag,
		label: cb.Label,
		attrs: cb.Attributes.Clone(),
	}
	if out.tag == "" {
		out.tag = DefaultCloseButtonTag
	}
	if out.label == "" {
		out.label = DefaultCloseButtonLabel
	}
	out.attrs.AddClass("close")
	if _, ok := out.attrs["type"]; !ok && out.tag == DefaultCloseButtonTag {
		out.attrs["type"] = "button"
	}
	out.attrs["data-notify"] = "dismiss"
	return out
}

// iconTag picks img when the plugin is told icons are image URLs.
func iconTag(pluginOptions map[string]any) string {
	if v, ok := pluginOptions["icon_type"]; ok {
		if s, _ := v.(string); s != "class" {
			return "img"
		}
	}
	return "span"
}

// renderTemplate produces the HTML the plugin clones for each notification.
func renderTemplate(el elements) string {
	var b strings.Builder
	if el.closeButton != nil {
		b.WriteString(tag(el.closeButton.tag, `<span aria-hidden="true">`+el.closeButton.label+`</span>`, el.closeButton.attrs))
	}
	b.WriteString("\n")
	b.WriteString(tag(el.iconTag, "", el.icon))
	b.WriteString("\n")
	b.WriteString(tag("span", placeholderTitle, el.title))
	b.WriteString("\n")
	if el.separator {
		b.WriteString(separatorMarkup)
	}
	b.WriteString(tag("span", placeholderBody, el.body))
	b.WriteString("\n")
	b.WriteString(tag("div", tag("div", el.progressTitle, el.progressBar), el.progressContainer))
	b.WriteString("\n")
	b.WriteString(tag("a", "", el.link))
	return tag("div", b.String(), el.container)
}
