// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped provides the shaped, measured, row-wrapped
// representation of rich text (the galley), the [Shaper] interface to
// the text shaping engine that produces it, and a reference
// [FaceShaper] implementation over [golang.org/x/image/font] faces.
package shaped

import (
	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/rich"
	"github.com/gimui/gim/styles"
)

// Job is one complete shaping request: the styled source text plus the
// per-row layout parameters. A Job is produced fresh for every layout
// pass and never cached.
type Job struct {

	// Source is the styled text to shape.
	Source rich.Text

	// Style is the default named text style applied to spans that do
	// not specify one. The zero value resolves to [rich.Body].
	Style rich.TextStyles

	// WrapWidth is the target width for each row. Rows soft-wrap at
	// line-break opportunities to stay within it. [math32.Infinity]
	// disables soft wrapping; newlines still produce new rows.
	WrapWidth float32

	// LeadingSpace is a horizontal offset applied to the first row
	// only, used when the text continues after prior content on a
	// shared layout line. Subsequent rows are unaffected.
	LeadingSpace float32

	// FirstRowMinHeight is the minimum height of the first row, used
	// to keep a short continuation from shrinking the shared line.
	FirstRowMinHeight float32

	// Align is the horizontal alignment of rows relative to the
	// galley origin.
	Align styles.Aligns

	// Justify stretches soft-wrapped rows to fill WrapWidth.
	Justify bool
}

// NewJob returns a new [Job] for the given source text with no
// wrapping.
func NewJob(tx rich.Text) *Job {
	return &Job{Source: tx, WrapWidth: math32.Infinity}
}

// DefaultStyle returns the effective default named style for the job:
// the job's Style, or [rich.Body] if unset.
func (j *Job) DefaultStyle() rich.TextStyles {
	if j.Style == rich.Unset {
		return rich.Body
	}
	return j.Style
}
