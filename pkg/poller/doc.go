// Package poller consumes the growl polling contract from Go.
//
// A Poller issues the request described by a growl.Polling spec, decodes the
// growl.PollResponse and hands every entry marked to be shown to a NotifyFunc, in
// response order. Each entry is applied to its own copy of the base settings.
//
//	p, err := poller.New(spec, base, func(ctx context.Context, s growl.Settings) {
//		fmt.Println(s.Title, s.Message)
//	}, poller.WithBaseURL("https://app.example.com"))
//	if err != nil {
//		return err
//	}
//	return p.Run(ctx)
//
// Run issues one request immediately and then one per interval until the context is
// cancelled. Failed requests are reported through the WithOnFail hook and never change
// the cadence; there is no retry and no backoff. Entries are not deduplicated across
// cycles.
package poller
