// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides a span-based rich text representation, where
// each span of runes shares a common [Style]. It is the input to the
// shaping and layout pipeline.
package rich

import (
	"image/color"
	"strings"
)

// TextStyles are the named semantic text styles. The zero value is
// Unset, which resolves to the default style of the context in which
// the text is laid out (normally [Body]).
type TextStyles int32

const (
	// Unset inherits the default style of the layout context.
	Unset TextStyles = iota

	// Body is the default style for normal text.
	Body

	// Heading is a larger style for headings.
	Heading

	// Monospace is a fixed-width style for code and similar text.
	Monospace

	// Small is a smaller style for captions and fine print.
	Small
)

func (ts TextStyles) String() string {
	switch ts {
	case Unset:
		return "Unset"
	case Body:
		return "Body"
	case Heading:
		return "Heading"
	case Monospace:
		return "Monospace"
	case Small:
		return "Small"
	}
	return "TextStyles(invalid)"
}

// Decorations are the text decoration line flags.
type Decorations int32

const (
	// Underline draws a line below the text.
	Underline Decorations = 1 << iota

	// Strikethrough draws a line through the middle of the text.
	Strikethrough
)

// HasFlag returns whether these decorations include all given flags.
func (d Decorations) HasFlag(flags Decorations) bool {
	return d&flags == flags
}

// SetFlag sets or clears the given flags.
func (d *Decorations) SetFlag(on bool, flags Decorations) {
	if on {
		*d |= flags
	} else {
		*d &^= flags
	}
}

// Weights are the font weights.
type Weights int32

const (
	// Normal is the normal font weight.
	Normal Weights = iota

	// Medium is a medium font weight.
	Medium

	// Bold is a bold font weight.
	Bold
)

// Slants are the font slants.
type Slants int32

const (
	// SlantNormal is an upright font slant.
	SlantNormal Slants = iota

	// Italic is an italic font slant.
	Italic
)

// Style is the set of styling properties shared by one span of rich
// text. The zero value inherits everything from the layout context's
// default style.
type Style struct {

	// Font is the named semantic text style.
	Font TextStyles

	// Weight is the font weight.
	Weight Weights

	// Slant is the font slant.
	Slant Slants

	// Size is a multiplier on the default font size of the named
	// style. 0 means 1.
	Size float32

	// Color is an explicit text color for the span. nil means the
	// color is not specified by the text, so the renderer's
	// interaction-derived color applies instead.
	Color color.Color

	// Background is an explicit background color for the span.
	// nil means none.
	Background color.Color

	// Decoration holds the decoration line flags.
	Decoration Decorations
}

// NewStyle returns a new default [Style].
func NewStyle() *Style {
	return &Style{}
}

// SetFont sets the named semantic text style and returns the style for
// chaining.
func (s *Style) SetFont(font TextStyles) *Style {
	s.Font = font
	return s
}

// SetWeight sets the font weight and returns the style for chaining.
func (s *Style) SetWeight(weight Weights) *Style {
	s.Weight = weight
	return s
}

// SetSlant sets the font slant and returns the style for chaining.
func (s *Style) SetSlant(slant Slants) *Style {
	s.Slant = slant
	return s
}

// SetSize sets the size multiplier and returns the style for chaining.
func (s *Style) SetSize(size float32) *Style {
	s.Size = size
	return s
}

// SetColor sets the explicit text color and returns the style for
// chaining. An explicit color always wins over any interaction-derived
// color supplied when painting.
func (s *Style) SetColor(clr color.Color) *Style {
	s.Color = clr
	return s
}

// SetBackground sets the explicit background color and returns the
// style for chaining.
func (s *Style) SetBackground(clr color.Color) *Style {
	s.Background = clr
	return s
}

// SetDecoration sets the given decoration flags and returns the style
// for chaining.
func (s *Style) SetDecoration(flags Decorations) *Style {
	s.Decoration.SetFlag(true, flags)
	return s
}

func (s *Style) String() string {
	fs := []string{}
	if s.Font != Unset {
		fs = append(fs, s.Font.String())
	}
	if s.Weight == Bold {
		fs = append(fs, "bold")
	}
	if s.Slant == Italic {
		fs = append(fs, "italic")
	}
	if s.Color != nil {
		fs = append(fs, "colored")
	}
	if s.Decoration.HasFlag(Underline) {
		fs = append(fs, "underline")
	}
	if s.Decoration.HasFlag(Strikethrough) {
		fs = append(fs, "strikethrough")
	}
	if len(fs) == 0 {
		return "plain"
	}
	return strings.Join(fs, " ")
}
