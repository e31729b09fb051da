// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui provides the immediate-mode widget surface: the [Ui]
// layout-context interface, interaction [Response] values, paint
// commands, interaction styling, and the [Label] widget. Everything
// here is recomputed every frame; no state persists between frames
// except what the caller threads through explicitly.
package ui

import (
	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/shaped"
	"github.com/gimui/gim/styles"
)

// Ui is the layout/cursor context a widget lays itself out into.
// It is implemented by the surrounding layout manager, which tracks
// the current rectangle, cursor, wrap policy, and placement, and
// allocates space in draw order. A Ui is mutated only by the widget
// currently being shown; widgets run strictly sequentially within a
// frame.
type Ui interface {

	// AvailableWidth returns the width currently available to a
	// widget. It may be infinite.
	AvailableWidth() float32

	// AvailableSizeBeforeWrap returns the space remaining on the
	// current layout line before the layout would wrap to the next
	// line.
	AvailableSizeBeforeWrap() math32.Vector2

	// Cursor returns the current cursor rectangle: where the next
	// widget will be placed, with the height of the current line.
	Cursor() math32.Box2

	// MaxRect returns the outer rectangle of the region being laid
	// out into.
	MaxRect() math32.Box2

	// WrapText returns the ambient wrap policy: whether text should
	// wrap by default in this layout.
	WrapText() bool

	// HorizontalPlacement returns the ambient horizontal alignment
	// for content.
	HorizontalPlacement() styles.Aligns

	// HorizontalJustify returns whether content should be stretched
	// to fill the available width.
	HorizontalJustify() bool

	// MainDir returns the main-axis direction of the enclosing
	// layout.
	MainDir() styles.Directions

	// MainWrap returns whether the enclosing layout wraps along its
	// main axis.
	MainWrap() bool

	// IsGrid returns whether the enclosing layout is a grid cell.
	IsGrid() bool

	// Fonts returns the shaping service used to lay out text.
	Fonts() shaped.Shaper

	// Painter returns the painter that accumulates this frame's paint
	// commands.
	Painter() Painter

	// Style returns the interaction style used to resolve colors from
	// widget state.
	Style() *Style

	// AllocateRect allocates the given rectangle in the layout,
	// registering it for hit testing with the given sense, and
	// returns the interaction response for it this frame.
	AllocateRect(rect math32.Box2, sense styles.Sense) Response

	// AllocateExactSize allocates a rectangle of exactly the given
	// size at the position determined by the layout, registering it
	// for hit testing with the given sense. It returns the allocated
	// rectangle and the interaction response for it this frame.
	AllocateExactSize(size math32.Vector2, sense styles.Sense) (math32.Box2, Response)
}
