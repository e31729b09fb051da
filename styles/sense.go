// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "strings"

// Sense is a bitflag set of the interaction types a widget region
// responds to. It determines what kind of events a region allocated
// for the widget will report.
type Sense int64

const (
	// SenseFocusable means the region can receive keyboard focus
	// (e.g., via tab traversal) without necessarily being clickable.
	SenseFocusable Sense = 1 << iota

	// SenseClickable means the region reports click events.
	SenseClickable

	// SenseDraggable means the region reports drag events.
	SenseDraggable
)

// SenseNone senses nothing: the region only reports hover.
func SenseNone() Sense {
	return 0
}

// SenseHover senses nothing but hover. Alias for [SenseNone],
// named for intent at call sites.
func SenseHover() Sense {
	return 0
}

// SenseClick senses clicks; clickable regions are also focusable.
func SenseClick() Sense {
	return SenseClickable | SenseFocusable
}

// SenseDrag senses drags; draggable regions are also focusable.
func SenseDrag() Sense {
	return SenseDraggable | SenseFocusable
}

// SenseClickAndDrag senses both clicks and drags.
func SenseClickAndDrag() Sense {
	return SenseClickable | SenseDraggable | SenseFocusable
}

// SenseFocusableNoninteractive senses keyboard focus only, with no
// pointer interaction. This is the default sense of static widgets
// such as labels.
func SenseFocusableNoninteractive() Sense {
	return SenseFocusable
}

// Has returns whether this sense includes all of the given flags.
func (se Sense) Has(flags Sense) bool {
	return se&flags == flags
}

// Interactive returns whether this sense responds to any pointer
// interaction (click or drag).
func (se Sense) Interactive() bool {
	return se&(SenseClickable|SenseDraggable) != 0
}

func (se Sense) String() string {
	if se == 0 {
		return "None"
	}
	fs := []string{}
	if se.Has(SenseFocusable) {
		fs = append(fs, "Focusable")
	}
	if se.Has(SenseClickable) {
		fs = append(fs, "Clickable")
	}
	if se.Has(SenseDraggable) {
		fs = append(fs, "Draggable")
	}
	return strings.Join(fs, "|")
}
