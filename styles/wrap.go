// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// WrapModes is the tri-state word-wrap override carried by text
// widgets. The zero value inherits the ambient wrap policy of the
// enclosing layout, so a widget laid out under different layouts can
// resolve differently.
type WrapModes int32

const (
	// WrapDefault inherits the wrap policy of the enclosing layout.
	WrapDefault WrapModes = iota

	// WrapAlways wraps text to the available width regardless of the
	// enclosing layout.
	WrapAlways

	// WrapNever never soft-wraps text. Newlines in the text still
	// produce new rows.
	WrapNever
)

func (w WrapModes) String() string {
	switch w {
	case WrapDefault:
		return "WrapDefault"
	case WrapAlways:
		return "WrapAlways"
	case WrapNever:
		return "WrapNever"
	}
	return "WrapModes(invalid)"
}

// Resolve returns the effective wrap flag given the ambient wrap
// policy of the enclosing layout.
func (w WrapModes) Resolve(ambient bool) bool {
	switch w {
	case WrapAlways:
		return true
	case WrapNever:
		return false
	}
	return ambient
}
