// Package handler adapts growl widgets to net/http.
//
// Handlers return a Response instead of writing to the http.ResponseWriter directly:
//
//	r.Get("/", handler.Wrap(func(r *http.Request) handler.Response {
//		return handler.Templ(views.Home(page))
//	}))
//
//	r.Post("/profile", handler.Wrap(func(r *http.Request) handler.Response {
//		w, err := growl.New(growl.Config{Type: growl.TypeSuccess, Body: "Saved"})
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Growl(w)
//	}))
//
// Growl responses are delivered through DataStar server-sent events when the request
// comes from a DataStar client, and as HTML script elements otherwise. Errors returned
// from handlers go through an ErrorHandler; the default one shows DataStar clients a
// danger toast and answers other clients with a plain text error.
package handler
