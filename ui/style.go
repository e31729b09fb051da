// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "image/color"

// WidgetVisuals are the visual parameters used to decorate a widget
// in one interaction state.
type WidgetVisuals struct {

	// TextColor is the fallback text color, applied unless the text
	// itself specifies a color.
	TextColor color.RGBA
}

// Style maps interaction state to [WidgetVisuals]. It is resolved by
// the theme layer; widgets only read it through [Style.Interact].
type Style struct {

	// Idle is used when the widget is not being interacted with.
	Idle WidgetVisuals

	// Hovered is used when the pointer is over the widget.
	Hovered WidgetVisuals

	// Active is used while the widget is pressed or dragged.
	Active WidgetVisuals

	// Focused is used when the widget holds keyboard focus without
	// pointer interaction.
	Focused WidgetVisuals
}

// Defaults sets a plain monochrome default theme, returning the style
// for chaining.
func (s *Style) Defaults() *Style {
	s.Idle.TextColor = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	s.Hovered.TextColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	s.Active.TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	s.Focused.TextColor = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	return s
}

// Interact returns the visuals for the interaction state of the given
// response, with precedence pressed > hovered > focused > idle.
func (s *Style) Interact(r Response) *WidgetVisuals {
	switch {
	case r.Pressed || r.Dragged:
		return &s.Active
	case r.Hovered:
		return &s.Hovered
	case r.Focused:
		return &s.Focused
	}
	return &s.Idle
}
