// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "github.com/gimui/gim/base/tomlx"

// DebugFlags are runtime debugging flags.
type DebugFlags struct {

	// LayoutTrace emits a debug log line for every label layout.
	LayoutTrace bool
}

// Settings are the user-configurable settings of the toolkit core:
// the interaction theme plus debugging flags. They round-trip through
// TOML.
type Settings struct {

	// Style is the interaction theme.
	Style Style

	// Debug holds the debugging flags.
	Debug DebugFlags
}

// Defaults sets default values, returning the settings for chaining.
func (st *Settings) Defaults() *Settings {
	st.Style.Defaults()
	return st
}

// Open reads the settings from the given TOML file.
func (st *Settings) Open(filename string) error {
	return tomlx.Open(st, filename)
}

// Save writes the settings to the given TOML file.
func (st *Settings) Save(filename string) error {
	return tomlx.Save(st, filename)
}

// AppSettings are the active settings. Callers can replace or
// reconfigure them before starting the frame loop.
var AppSettings = (&Settings{}).Defaults()
