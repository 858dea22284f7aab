// Package inbox queues notifications per recipient until a polling growl widget
// collects them.
//
// A Manager stores messages in a Store and drains them into the poll response
// consumed by widgets built with growl.Polling:
//
//	m := inbox.NewManager(inbox.NewMemoryStore(), inbox.WithTTL(time.Hour))
//	_ = m.Send(ctx, inbox.Message{Recipient: userID, Title: "Export", Body: "Your export is ready."})
//
//	// in the polling endpoint
//	resp, err := m.Poll(ctx, userID)
//	if err != nil {
//		return handler.Error(err)
//	}
//	return handler.Poll(resp)
//
// Each message is delivered once. Expired messages are dropped without being
// delivered. Hidden messages travel in the response with show=false so client
// callbacks can see them, but no notification is displayed for them.
package inbox
