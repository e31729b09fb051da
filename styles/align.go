// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the shared styling types of the immediate-mode
// GUI core: alignment, layout direction, wrap mode, interaction sense,
// and stroke.
package styles

// Aligns has the different alignment positions along an axis.
type Aligns int32

const (
	// Start aligns to the start (left or top) of the space.
	Start Aligns = iota

	// Center aligns to the center of the space.
	Center

	// End aligns to the end (right or bottom) of the space.
	End
)

func (a Aligns) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	}
	return "Aligns(invalid)"
}

// AlignFactor returns the proportion of leftover space placed before
// the content for the given alignment: 0 for Start, 0.5 for Center,
// and 1 for End.
func (a Aligns) AlignFactor() float32 {
	switch a {
	case Center:
		return 0.5
	case End:
		return 1
	}
	return 0
}
