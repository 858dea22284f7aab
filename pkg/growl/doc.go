// Package growl builds Growl-style toast notifications for the Bootstrap Notify jQuery plugin.
//
// A Widget is built once from a Config. Building merges caller element attributes with the
// marker attributes the plugin relies on, renders the HTML template the plugin fills in at
// display time, and assembles the client script that invokes the plugin. The script is
// selected from three modes resolved at build time:
//
//   - ModeImmediate: a single $.notify call, optionally deferred by Config.Delay.
//   - ModeOneShot: one AJAX request whose response carries the notifications to show.
//   - ModeRepeating: the same request issued at setup and then every Polling.Interval.
//
// # Usage
//
//	w, err := growl.New(growl.Config{
//		Type:          growl.TypeSuccess,
//		Title:         "Saved",
//		Body:          "Your profile has been updated.",
//		ShowSeparator: true,
//		Delay:         500,
//	})
//	if err != nil {
//		return err
//	}
//
//	page := growl.NewPage()
//	w.Register(page)
//
// The page collects the plugin assets and scripts of every registered widget and renders
// them through templ components:
//
//	@page.Head()
//	...
//	@page.Scripts()
//
// # Polling
//
// Polling asks a server endpoint for notifications:
//
//	w, err := growl.New(growl.Config{
//		Type: growl.TypeInfo,
//		Polling: &growl.Polling{
//			URL:          "/notifications/poll",
//			Interval:     5000,
//			FailCallback: "app.pollFailed",
//		},
//	})
//
// The endpoint must answer with a PollResponse encoded as JSON. Entries with Show set to
// false are skipped, which lets the server keep returning an entry without it reappearing.
package growl
