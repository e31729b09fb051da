// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	src := "The lazy fox typed in some familiar text"
	sr := []rune(src)

	plain := NewStyle()
	ital := NewStyle().SetSlant(Italic).SetColor(color.RGBA{R: 255, A: 255})
	boldBig := NewStyle().SetWeight(Bold).SetSize(1.5)

	tx := NewText(boldBig, sr[:4])
	tx.AddSpan(ital, sr[4:8])
	tx.AddSpan(plain, sr[8:])

	assert.Equal(t, 3, tx.NumSpans())
	assert.Equal(t, len(sr), tx.Len())
	assert.Equal(t, sr, tx.Join())
	assert.True(t, tx.HasColor())
	assert.False(t, tx.HasFont())
}

func TestTextPlain(t *testing.T) {
	tx := NewPlainText("hello")
	assert.Equal(t, 1, tx.NumSpans())
	assert.Equal(t, "hello", string(tx.Join()))
	assert.False(t, tx.HasColor())

	tx.AddRunes([]rune(" world"))
	assert.Equal(t, 1, tx.NumSpans())
	assert.Equal(t, "hello world", string(tx.Join()))

	empty := Text{}
	empty.AddRunes([]rune("x"))
	assert.Equal(t, 1, empty.NumSpans())
}

func TestTextHasFont(t *testing.T) {
	tx := NewText(NewStyle().SetFont(Heading), []rune("Title"))
	assert.True(t, tx.HasFont())

	// explicit color on an empty span does not count
	tx2 := NewText(NewStyle().SetColor(color.RGBA{B: 255, A: 255}), nil)
	assert.False(t, tx2.HasColor())
}

func TestJoinTexts(t *testing.T) {
	a := NewPlainText("a")
	b := NewPlainText("b")
	j := Join(a, b)
	assert.Equal(t, 2, j.NumSpans())
	assert.Equal(t, "ab", string(j.Join()))

	c := j.Clone()
	c[0].Text[0] = 'z'
	assert.Equal(t, "ab", string(j.Join()))
	assert.Equal(t, "zb", string(c.Join()))
}
