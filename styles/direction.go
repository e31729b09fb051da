// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// Directions has the main-axis layout directions: the order in which a
// layout places its children.
type Directions int32

const (
	// LeftToRight places children from left to right.
	LeftToRight Directions = iota

	// RightToLeft places children from right to left.
	RightToLeft

	// TopDown places children from top to bottom.
	TopDown

	// BottomUp places children from bottom to top.
	BottomUp
)

func (d Directions) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	case TopDown:
		return "TopDown"
	case BottomUp:
		return "BottomUp"
	}
	return "Directions(invalid)"
}

// IsHorizontal returns whether this direction runs along the
// horizontal axis.
func (d Directions) IsHorizontal() bool {
	return d == LeftToRight || d == RightToLeft
}
