// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/rich"
	"github.com/gimui/gim/styles"
)

// Face7x13 advances every glyph 7 and has line height 13, so row
// geometry is exact in these tests.
const (
	adv = float32(7)
	lht = float32(13)
)

func plainJob(str string, wrapWidth float32) *Job {
	j := NewJob(rich.NewPlainText(str))
	j.WrapWidth = wrapWidth
	return j
}

func TestShapeSingleRow(t *testing.T) {
	sh := NewFaceShaper(nil)
	g := sh.Shape(plainJob("Hello", math32.Infinity))
	require.Equal(t, 1, g.NumRows())
	assert.Equal(t, math32.Vec2(5*adv, lht), g.Size())
	assert.Equal(t, math32.B2(0, 0, 5*adv, lht), g.Rows[0].Bounds)
	assert.Len(t, g.Rows[0].Glyphs, 5)
	assert.Equal(t, "Hello", g.PlainText())
}

func TestShapeEmptyText(t *testing.T) {
	sh := NewFaceShaper(nil)
	g := sh.Shape(plainJob("", math32.Infinity))
	require.Equal(t, 1, g.NumRows())
	assert.Len(t, g.Rows[0].Glyphs, 0)
	sz := g.Size()
	assert.True(t, math32.IsFinite(sz.X) && sz.X >= 0)
	assert.True(t, math32.IsFinite(sz.Y) && sz.Y >= 0)
	assert.Equal(t, lht, sz.Y)
}

func TestShapeWrapWidthProperty(t *testing.T) {
	sh := NewFaceShaper(nil)
	texts := []string{
		"A very long sentence that must wrap",
		"one two three four five six seven eight nine ten",
		"short",
		"trailing spaces   in   here too",
	}
	widths := []float32{30, 50, 77, 120, 200}
	for _, txt := range texts {
		for _, w := range widths {
			g := sh.Shape(plainJob(txt, w))
			require.GreaterOrEqual(t, g.NumRows(), 1)
			for ri, row := range g.Rows {
				// a row may exceed the width only if it holds a single
				// unbreakable segment
				if row.Size().X > w {
					for _, gl := range row.Glyphs {
						assert.NotEqual(t, ' ', gl.Rune,
							"oversize row %d for %q at width %v must be unbreakable", ri, txt, w)
					}
				}
			}
		}
	}
}

func TestShapeOversizeToken(t *testing.T) {
	sh := NewFaceShaper(nil)
	g := sh.Shape(plainJob("aaaaaaaaaaaaaaaaaaaa bb", 50))
	require.Equal(t, 2, g.NumRows())
	// the unbreakable token stays whole on its own row
	assert.Equal(t, 20*adv, g.Rows[0].Size().X)
	assert.Equal(t, 2*adv, g.Rows[1].Size().X)
}

func TestShapeNewlines(t *testing.T) {
	sh := NewFaceShaper(nil)
	g := sh.Shape(plainJob("a\nb\n", math32.Infinity))
	require.Equal(t, 3, g.NumRows())
	assert.Len(t, g.Rows[0].Glyphs, 1)
	assert.Len(t, g.Rows[1].Glyphs, 1)
	assert.Len(t, g.Rows[2].Glyphs, 0)
	assert.Equal(t, math32.B2(0, lht, adv, 2*lht), g.Rows[1].Bounds)
}

func TestShapeLeadingSpace(t *testing.T) {
	sh := NewFaceShaper(nil)
	j := plainJob("abc def ghi jkl", 100)
	j.LeadingSpace = 30
	g := sh.Shape(j)
	require.GreaterOrEqual(t, g.NumRows(), 2)
	// first row is indented, later rows start at the origin
	assert.Equal(t, float32(30), g.Rows[0].Bounds.Min.X)
	assert.Equal(t, float32(0), g.Rows[1].Bounds.Min.X)
	require.NotEmpty(t, g.Rows[0].Glyphs)
	assert.Equal(t, float32(30), g.Rows[0].Glyphs[0].Pos.X)
	for _, row := range g.Rows {
		assert.LessOrEqual(t, row.Bounds.Max.X, float32(100))
	}
}

func TestShapeFirstRowMinHeight(t *testing.T) {
	sh := NewFaceShaper(nil)
	j := plainJob("aaaa bbbb", 35)
	j.FirstRowMinHeight = 40
	g := sh.Shape(j)
	require.Equal(t, 2, g.NumRows())
	assert.Equal(t, float32(40), g.Rows[0].Size().Y)
	assert.Equal(t, lht, g.Rows[1].Size().Y)
	assert.Equal(t, float32(40), g.Rows[1].Bounds.Min.Y)
}

func TestShapeAlign(t *testing.T) {
	sh := NewFaceShaper(nil)

	j := plainJob("Hi", math32.Infinity)
	j.Align = styles.Center
	g := sh.Shape(j)
	assert.Equal(t, -adv, g.Rows[0].Bounds.Min.X)
	assert.Equal(t, adv, g.Rows[0].Bounds.Max.X)

	j = plainJob("Hi", math32.Infinity)
	j.Align = styles.End
	g = sh.Shape(j)
	assert.Equal(t, -2*adv, g.Rows[0].Bounds.Min.X)
	assert.Equal(t, float32(0), g.Rows[0].Bounds.Max.X)
	// size is unaffected by the alignment shift
	assert.Equal(t, 2*adv, g.Size().X)
}

func TestShapeJustify(t *testing.T) {
	sh := NewFaceShaper(nil)
	j := plainJob("aa bb cc", 42)
	j.Justify = true
	g := sh.Shape(j)
	require.Equal(t, 2, g.NumRows())
	// the soft-wrapped row stretches to the full wrap width
	assert.Equal(t, float32(42), g.Rows[0].Size().X)
	// the final row does not
	assert.Equal(t, 2*adv, g.Rows[1].Size().X)
}

func TestShapeHasColor(t *testing.T) {
	sh := NewFaceShaper(nil)
	red := color.RGBA{R: 255, A: 255}
	tx := rich.NewText(rich.NewStyle(), []rune("plain "))
	tx.AddSpan(rich.NewStyle().SetColor(red), []rune("red"))
	j := NewJob(tx)
	g := sh.Shape(j)
	assert.True(t, g.HasColor)
	// glyphs carry their source span for style lookup
	last := g.Rows[0].Glyphs[len(g.Rows[0].Glyphs)-1]
	assert.Equal(t, 1, last.Span)
	assert.Equal(t, red, tx[last.Span].Style.Color)

	g2 := sh.Shape(plainJob("plain", math32.Infinity))
	assert.False(t, g2.HasColor)
}

func TestShapeBoundsContainRows(t *testing.T) {
	sh := NewFaceShaper(nil)
	g := sh.Shape(plainJob("one two three four five", 60))
	for _, row := range g.Rows {
		assert.True(t, g.Bounds.ContainsBox(row.Bounds))
	}
}

func TestShapeDefaultStyle(t *testing.T) {
	j := NewJob(rich.NewPlainText("x"))
	assert.Equal(t, rich.Body, j.DefaultStyle())
	j.Style = rich.Monospace
	assert.Equal(t, rich.Monospace, j.DefaultStyle())
}
