package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// linePrompter reads prompt answers from the same scanner the command loop
// uses. End of input counts as a cancel.
type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *linePrompter) Prompt(message string) (string, bool) {
	fmt.Fprintf(p.out, "%s ", message)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return p.scanner.Text(), true
}

type lineAlerter struct {
	out io.Writer
}

func (a *lineAlerter) Alert(title, header, content string) {
	fmt.Fprintln(a.out, alertStyle.Render(titleStyle.Render(title+": "+header)+"\n"+content))
}

// runPlain drives a toolbar from line commands:
//
//	shape <Line|Rectangle|Circle|Triangle>
//	color <name|#rrggbb|none>
//	show
//	quit
func runPlain(in io.Reader, out io.Writer, config *Config) error {
	canvas := newCanvas(config)
	toolbar := NewToolbar(canvas)
	scanner := bufio.NewScanner(in)
	prompter := &linePrompter{scanner: scanner, out: out}
	alerter := &lineAlerter{out: out}

	show := func() {
		fmt.Fprintln(out, strings.Join(renderPreview(canvas.Image(), config.PreviewWidth), "\n"))
	}

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "show":
			show()
		case "shape":
			kind, ok := ParseShapeKind(arg)
			if !ok {
				fmt.Fprintf(out, "unknown shape %q\n", arg)
				continue
			}
			err := toolbar.ChooseShape(kind, prompter, alerter)
			var rangeErr *OutOfRangeError
			if err != nil && !errors.As(err, &rangeErr) {
				return err
			}
			if err == nil && toolbar.Vertices() != nil {
				show()
			}
		case "color":
			c, ok := lookupColor(arg)
			if !ok {
				fmt.Fprintf(out, "unknown color %q\n", arg)
				continue
			}
			if err := toolbar.PickColor(c); err != nil {
				var rangeErr *OutOfRangeError
				if errors.As(err, &rangeErr) {
					alerter.Alert(alertTitle, alertRangeHeader, rangeErr.Error())
					continue
				}
				return err
			}
			if toolbar.Vertices() != nil {
				show()
			}
		case "help", "?":
			fmt.Fprintln(out, "commands: shape <Line|Rectangle|Circle|Triangle>, color <name|#rrggbb|none>, show, quit")
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
		}
	}
}

// lookupColor resolves a palette name or a hex color.
func lookupColor(name string) (color.Color, bool) {
	for _, p := range palette {
		if strings.EqualFold(p.Name, name) {
			return p.Color, true
		}
	}
	if c, ok := parseHexColor(name); ok {
		return c, true
	}
	return nil, false
}
