package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

var errUnknownPart = errors.New("unknown part")

// loadWidget decodes a YAML widget definition.
func loadWidget(r io.Reader) (growl.Config, error) {
	var cfg growl.Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return growl.Config{}, fmt.Errorf("decode widget: %w", err)
	}
	return cfg, nil
}

func runRender(args []string, stdout io.Writer, opts ...growl.Option) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("f", "-", "widget YAML file, - for stdin")
	part := fs.String("part", "all", "output: all, template, script, assets or html")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := io.Reader(os.Stdin)
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cfg, err := loadWidget(in)
	if err != nil {
		return err
	}
	w, err := growl.New(cfg, opts...)
	if err != nil {
		return err
	}
	return writePart(stdout, w, *part)
}

func writePart(out io.Writer, w *growl.Widget, part string) error {
	switch part {
	case "template":
		_, err := fmt.Fprintln(out, w.Template())
		return err
	case "script":
		_, err := fmt.Fprintln(out, w.Script())
		return err
	case "assets":
		a := w.Assets()
		_, err := fmt.Fprintln(out, strings.Join(append(a.Styles, a.Scripts...), "\n"))
		return err
	case "html":
		page := growl.NewPage()
		w.Register(page)
		if err := page.Head().Render(context.Background(), out); err != nil {
			return err
		}
		return page.Scripts().Render(context.Background(), out)
	case "all":
		_, err := fmt.Fprintf(out, "# id: %s\n# type: %s\n# mode: %s\n\n## template\n%s\n\n## script\n%s\n",
			w.ID(), w.Type(), w.Mode(), w.Template(), w.Script())
		return err
	}
	return fmt.Errorf("%w: %q", errUnknownPart, part)
}
