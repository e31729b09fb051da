// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image/color"

	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/shaped"
	"github.com/gimui/gim/styles"
)

// TextShape is a paint command for one shaped galley of text.
type TextShape struct {

	// Pos is the galley origin in screen space: where the galley's
	// alignment anchor lands.
	Pos math32.Vector2

	// Galley is the shaped text to paint.
	Galley *shaped.Galley

	// OverrideColor, if non-nil, replaces the text color of every
	// glyph. It is nil when the source text specifies its own colors,
	// which always win.
	OverrideColor color.Color

	// Underline is the stroke for a focus underline beneath the text.
	// The zero value draws nothing.
	Underline styles.Stroke

	// Angle is the rotation of the text in radians around Pos.
	Angle float32
}

// Painter accumulates paint commands for the current frame, in draw
// order. It is implemented by the rendering backend.
type Painter interface {

	// Add appends a text paint command to the frame's command list.
	Add(shape TextShape)
}
