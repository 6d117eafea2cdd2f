package main

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/gghost/ui"
)

type message int

const (
	increment message = iota
	reset
)

// counter is the demo application: two buttons and a label.
type counter struct {
	count int
	typed string
}

func (c *counter) View() ui.Element {
	label := fmt.Sprintf("Count: %d", c.count)
	if c.typed != "" {
		label += "  " + c.typed
	}
	return ui.Container(
		ui.Column(
			ui.Button(ui.Text("Increment"), increment),
			ui.Button(ui.Text("Reset"), reset),
			ui.Text(label).WithColor(gg.RGB(0.95, 0.95, 0.95)),
		).WithSpacing(8),
	).WithPadding(ui.Uniform(12))
}

func (c *counter) Update(msg ui.Message) {
	switch msg {
	case increment:
		c.count++
	case reset:
		c.count = 0
	}
}

// OnEvent keeps committed text for display.
func (c *counter) OnEvent(ev ui.Event) {
	if ke, ok := ev.(ui.KeyboardEvent); ok && ke.Kind == ui.TextCommitted {
		c.typed += ke.Text
	}
}

func (c *counter) Background() gg.RGBA { return gg.RGB(0.12, 0.12, 0.16) }
