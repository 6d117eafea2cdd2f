// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import "github.com/gogpu/gg"

// ButtonWidget is a clickable element wrapping content. It publishes
// OnPress when the left button is pressed and released over it.
type ButtonWidget struct {
	Content Element
	OnPress Message
	Padding Padding

	Background gg.RGBA
	Hovered    gg.RGBA
	Pressed    gg.RGBA
	Radius     float32
}

type buttonState struct {
	pressed bool
}

// Button returns a button around content.
func Button(content Element, onPress Message) *ButtonWidget {
	return &ButtonWidget{
		Content:    content,
		OnPress:    onPress,
		Padding:    Padding{Top: 5, Right: 10, Bottom: 5, Left: 10},
		Background: gg.RGB(0.87, 0.87, 0.87),
		Hovered:    gg.RGB(0.80, 0.80, 0.80),
		Pressed:    gg.RGB(0.70, 0.70, 0.70),
		Radius:     2,
	}
}

func (b *ButtonWidget) Tag() string         { return "button" }
func (b *ButtonWidget) NewState() any       { return &buttonState{} }
func (b *ButtonWidget) Children() []Element { return []Element{b.Content} }

func (b *ButtonWidget) state(st *Tree) *buttonState {
	s, ok := st.State.(*buttonState)
	if !ok {
		s = &buttonState{}
		st.State = s
	}
	return s
}

func (b *ButtonWidget) Layout(st *Tree, limits Limits, r *Renderer) Node {
	child := b.Content.Layout(&st.Children[0], limits.Loose().Shrink(b.Padding), r)
	child = child.Translate(b.Padding.Left, b.Padding.Top)
	s := limits.Resolve(Size{
		Width:  child.Bounds.Width + b.Padding.horizontal(),
		Height: child.Bounds.Height + b.Padding.vertical(),
	})
	return Node{Bounds: Rectangle{Width: s.Width, Height: s.Height}, Children: []Node{child}}
}

func (b *ButtonWidget) Update(st *Tree, ev Event, n Node, cursor Cursor, shell *Shell) Status {
	if b.Content.Update(&st.Children[0], ev, n.Children[0], cursor, shell) == Captured {
		return Captured
	}
	me, ok := ev.(MouseEvent)
	if !ok || me.Button != MouseLeft {
		return Ignored
	}
	s := b.state(st)
	switch me.Kind {
	case ButtonPressed:
		if b.OnPress != nil && cursor.Over(n.Bounds) {
			s.pressed = true
			return Captured
		}
	case ButtonReleased:
		if s.pressed {
			s.pressed = false
			if cursor.Over(n.Bounds) {
				shell.Publish(b.OnPress)
			}
			return Captured
		}
	}
	return Ignored
}

func (b *ButtonWidget) Draw(st *Tree, r *Renderer, n Node, cursor Cursor) {
	bg := b.Background
	switch {
	case b.state(st).pressed:
		bg = b.Pressed
	case b.OnPress != nil && cursor.Over(n.Bounds):
		bg = b.Hovered
	}
	r.FillQuad(Quad{Bounds: n.Bounds, Background: bg, BorderRadius: b.Radius})
	b.Content.Draw(&st.Children[0], r, n.Children[0], cursor)
}

func (b *ButtonWidget) Interaction(_ *Tree, n Node, cursor Cursor) Interaction {
	if b.OnPress != nil && cursor.Over(n.Bounds) {
		return InteractionPointer
	}
	return InteractionNone
}
