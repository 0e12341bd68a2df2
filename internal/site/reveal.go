package site

import (
	"fmt"
	"html/template"
	"strconv"
)

// Direction is where a revealed element slides in from.
type Direction string

const (
	RevealUp    Direction = "up"
	RevealDown  Direction = "down"
	RevealLeft  Direction = "left"
	RevealRight Direction = "right"
)

func parseDirection(s string) Direction {
	switch d := Direction(s); d {
	case RevealUp, RevealDown, RevealLeft, RevealRight:
		return d
	default:
		return RevealUp
	}
}

// Reveal returns the attributes that opt an element into the entrance
// animation. static/js/reveal.js marks the element visible the first time
// it scrolls into view and stops watching it, so the animation never replays.
func Reveal(direction string, delay float64) template.HTMLAttr {
	if delay < 0 {
		delay = 0
	}
	return template.HTMLAttr(fmt.Sprintf(`data-reveal="%s" data-reveal-delay="%s"`,
		parseDirection(direction),
		strconv.FormatFloat(delay, 'f', -1, 64),
	))
}

// stagger spaces out the reveal delay of the i-th element of a list.
func stagger(i int, step float64) float64 {
	return float64(i) * step
}
