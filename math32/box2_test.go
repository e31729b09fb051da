// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2(1, 2, 5, 6)
	assert.Equal(t, Vector2{4, 4}, b.Size())
	assert.Equal(t, Vector2{3, 4}, b.Center())
	assert.Equal(t, Vector2{1, 2}, b.LeftTop())
	assert.Equal(t, Vector2{3, 2}, b.CenterTop())
	assert.Equal(t, Vector2{5, 2}, b.RightTop())

	assert.True(t, b.ContainsPoint(Vec2(3, 3)))
	assert.False(t, b.ContainsPoint(Vec2(0, 3)))
	assert.True(t, b.ContainsBox(B2(2, 3, 4, 5)))
	assert.False(t, b.ContainsBox(B2(2, 3, 6, 5)))

	assert.Equal(t, B2(3, 4, 9, 10), B2(1, 2, 5, 6).Translate(Vec2(2, 2)))
	assert.Equal(t, B2(1, 2, 8, 9), B2(1, 2, 5, 6).Union(B2(4, 5, 8, 9)))
	assert.Equal(t, B2(4, 5, 5, 6), B2(1, 2, 5, 6).Intersect(B2(4, 5, 8, 9)))

	assert.True(t, B2Empty().IsEmpty())
	e := B2Empty()
	e.ExpandByPoint(Vec2(2, 3))
	e.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 3, 2, 5), e)

	assert.Equal(t, B2(1, 2, 5, 6), B2(5, 6, 1, 2).Canon())
	assert.Equal(t, B2FromMinSize(Vec2(1, 2), Vec2(4, 4)), B2(1, 2, 5, 6))
}

func TestBox2Rect(t *testing.T) {
	assert.Equal(t, B2(1, 2, 5, 6), B2FromRect(image.Rect(1, 2, 5, 6)))
	// min floors, max ceils, so the rect covers the box
	assert.Equal(t, image.Rect(1, 2, 6, 7), B2(1.7, 2.3, 5.1, 6.9).ToRect())
}
