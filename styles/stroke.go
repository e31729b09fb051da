// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "image/color"

// Stroke describes a line stroke by width and color. The zero value
// is "no stroke".
type Stroke struct {
	// Width is the stroke width in points. 0 means no stroke.
	Width float32

	// Color is the stroke color.
	Color color.RGBA
}

// NewStroke returns a new [Stroke] with the given width and color.
func NewStroke(width float32, clr color.RGBA) Stroke {
	return Stroke{Width: width, Color: clr}
}

// IsZero returns whether this stroke draws nothing.
func (s Stroke) IsZero() bool {
	return s.Width <= 0 || s.Color.A == 0
}
