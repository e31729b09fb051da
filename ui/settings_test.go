// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveOpen(t *testing.T) {
	st := (&Settings{}).Defaults()
	st.Style.Idle.TextColor = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	st.Debug.LayoutTrace = true

	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, st.Save(fn))

	got := (&Settings{}).Defaults()
	require.NoError(t, got.Open(fn))
	assert.Equal(t, st, got)
}

func TestSettingsOpenMissing(t *testing.T) {
	st := (&Settings{}).Defaults()
	err := st.Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
