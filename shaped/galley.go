// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/rich"
)

// Glyph is one positioned glyph within a [Row].
type Glyph struct {

	// Rune is the source rune this glyph renders.
	Rune rune

	// Pos is the top-left position of the glyph cell, relative to the
	// galley origin.
	Pos math32.Vector2

	// Advance is the horizontal advance of the glyph.
	Advance float32

	// Span is the index of the source [rich.Span] this glyph came
	// from, for style and color lookup during painting.
	Span int
}

// Row is one visual line within a [Galley], with its own bounding
// rectangle and glyphs.
type Row struct {

	// Bounds is the bounding rectangle of the row, relative to the
	// galley origin. The horizontal placement reflects the job's
	// alignment: Start rows have Min.X >= 0, Center rows straddle
	// the origin, and End rows end at it.
	Bounds math32.Box2

	// Glyphs are the positioned glyphs of the row, in visual order.
	Glyphs []Glyph
}

// Size returns the size of the row's bounding rectangle.
func (rw *Row) Size() math32.Vector2 {
	return rw.Bounds.Size()
}

func (rw *Row) String() string {
	rn := make([]rune, len(rw.Glyphs))
	for i, g := range rw.Glyphs {
		rn[i] = g.Rune
	}
	return fmt.Sprintf("%q %v", string(rn), rw.Bounds)
}

// Galley is a shaped, measured, row-wrapped representation of text,
// ready for hit testing and painting. A galley always has at least one
// row, even for empty text.
type Galley struct {

	// Source is the styled input text that generated this galley.
	Source rich.Text

	// Rows are the shaped rows, top to bottom. Never empty.
	Rows []Row

	// Bounds is the bounding box of all rows, relative to the galley
	// origin.
	Bounds math32.Box2

	// HasColor indicates whether any glyph's source span specifies an
	// explicit color, in which case caller-supplied color overrides
	// do not apply when painting.
	HasColor bool
}

// Size returns the total size of the galley's bounding box.
func (g *Galley) Size() math32.Vector2 {
	return g.Bounds.Size()
}

// NumRows returns the number of rows in the galley.
func (g *Galley) NumRows() int {
	return len(g.Rows)
}

// PlainText returns the plain rune content of the source text as a
// string.
func (g *Galley) PlainText() string {
	return string(g.Source.Join())
}

func (g *Galley) String() string {
	str := ""
	for i := range g.Rows {
		str += fmt.Sprintf("#%d: %s\n", i, g.Rows[i].String())
	}
	return str
}
