package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

const (
	jqueryURL    = "https://code.jquery.com/jquery-3.7.1.min.js"
	bootstrapURL = "https://cdn.jsdelivr.net/npm/bootstrap@3.4.1/dist/css/bootstrap.min.css"
	datastarURL  = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
)

func indexPage(page *growl.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>growl demo</title>
<link rel="stylesheet" href="`+bootstrapURL+`">
<script src="`+jqueryURL+`"></script>
<script type="module" src="`+datastarURL+`"></script>
`); err != nil {
			return err
		}
		if err := page.Head().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head>
<body class="container">
<h1>growl demo</h1>
<form data-on-submit="@post('/notify', {contentType: 'form'})">
<input class="form-control" name="message" placeholder="Message">
<button class="btn btn-primary" type="submit">Notify</button>
</form>
`); err != nil {
			return err
		}
		if err := page.Scripts().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
