// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides simple functions for reading and writing
// values through TOML files.
package tomlx

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("tomlx.Open: %w", err)
	}
	defer f.Close()
	return Read(v, f)
}

// Read reads the given value from the given reader of TOML content.
func Read(v any, r io.Reader) error {
	if err := toml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("tomlx.Read: %w", err)
	}
	return nil
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("tomlx.Save: %w", err)
	}
	defer f.Close()
	return Write(v, f)
}

// Write writes the given value to the given writer as TOML content.
func Write(v any, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("tomlx.Write: %w", err)
	}
	return nil
}
