package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown  = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"reveal":     Reveal,
		"hero":       newHero,
		"stagger":    stagger,
		"monthYear":  monthYear,
		"longDate":   longDate,
		"paragraphs": paragraphs,
		"number":     number,
		"odd":        func(i int) bool { return i%2 == 1 },
	}
}

// Hero is the banner at the top of the inner pages.
type Hero struct {
	Heading    string
	Subheading string
	Image      string
	Alt        string
}

func newHero(heading, subheading, image, alt string) Hero {
	return Hero{Heading: heading, Subheading: subheading, Image: image, Alt: alt}
}

// monthYear formats dates on project cards, e.g. "March 2024".
func monthYear(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("January 2006")
}

// longDate formats the completion date in the project sidebar.
func longDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// paragraphs renders a multi-line description with one paragraph per line.
// Lines may carry inline markdown; the output is sanitised.
func paragraphs(text string) template.HTML {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(strings.Join(lines, "\n\n")), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// number zero-pads a 0-based list index for display, e.g. 0 -> "01".
func number(i int) string {
	return fmt.Sprintf("%02d", i+1)
}
