// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/rich"
)

// FaceShaper is a reference [Shaper] that measures text with
// [font.Face] advances and wraps greedily at UAX #14 line-break
// opportunities. It has no dependency on a GPU text stack, so the
// layout pipeline can run and be tested against real measured
// geometry. Style size multipliers and slant/weight variants are
// honored only to the extent that distinct faces are registered for
// the named text styles.
type FaceShaper struct {

	// Default is the face used for named styles with no registered
	// face.
	Default font.Face

	// Faces maps named text styles to specific faces.
	Faces map[rich.TextStyles]font.Face
}

// NewFaceShaper returns a new [FaceShaper] with the given default
// face. A nil face defaults to [basicfont.Face7x13].
func NewFaceShaper(def font.Face) *FaceShaper {
	if def == nil {
		def = basicfont.Face7x13
	}
	return &FaceShaper{Default: def, Faces: map[rich.TextStyles]font.Face{}}
}

// AddFace registers a face for the given named text style, returning
// the shaper for chaining.
func (fs *FaceShaper) AddFace(st rich.TextStyles, fc font.Face) *FaceShaper {
	fs.Faces[st] = fc
	return fs
}

func (fs *FaceShaper) face(st rich.TextStyles) font.Face {
	if fc, ok := fs.Faces[st]; ok && fc != nil {
		return fc
	}
	return fs.Default
}

func (fs *FaceShaper) advance(fc font.Face, r rune) float32 {
	adv, ok := fc.GlyphAdvance(r)
	if !ok {
		// unknown rune: fall back to a representative advance
		adv, ok = fc.GlyphAdvance('x')
		if !ok {
			adv = fc.Metrics().Height / 2
		}
	}
	return math32.FromFixed(adv)
}

// segment is one unbreakable run of glyphs ending at a line-break
// opportunity. Glyph positions are relative to the segment start.
type segment struct {
	glyphs  []Glyph
	width   float32
	trimmed float32 // width excluding trailing whitespace
	hard    bool    // ends with a mandatory break (newline)
}

// rowBuild is a row under construction. Glyph positions are relative
// to the row's content start, excluding the indent.
type rowBuild struct {
	glyphs []Glyph
	width  float32 // content width, excluding indent
	indent float32
	soft   bool // ended by soft wrap rather than newline or end of text
}

// Shape shapes the job into a galley, guaranteeing at least one row.
// Newlines always produce a new row; soft wraps occur at line-break
// opportunities when the accumulated row content would exceed the
// job's wrap width. A single unbreakable segment wider than the wrap
// width occupies one oversize row rather than being broken or dropped.
func (fs *FaceShaper) Shape(j *Job) *Galley {
	g := &Galley{Source: j.Source, HasColor: j.Source.HasColor()}
	def := j.DefaultStyle()

	segs := fs.segments(j, def)
	rows := fs.fillRows(j, segs)
	if j.Justify && math32.IsFinite(j.WrapWidth) {
		justifyRows(rows, j.WrapWidth)
	}
	fs.finalize(j, def, g, rows)
	return g
}

// segments flattens the source spans into measured unbreakable
// segments, using UAX #14 line segmentation across span boundaries.
func (fs *FaceShaper) segments(j *Job, def rich.TextStyles) []segment {
	var runes []rune
	var spanOf []int
	for si := range j.Source {
		runes = append(runes, j.Source[si].Text...)
		for range j.Source[si].Text {
			spanOf = append(spanOf, si)
		}
	}

	var segs []segment
	rest := string(runes)
	state := -1
	ri := 0
	for len(rest) > 0 {
		var str string
		str, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
		sg := segment{}
		x := float32(0)
		for _, r := range str {
			si := spanOf[ri]
			ri++
			if r == '\n' || r == '\r' {
				sg.hard = true
				continue
			}
			fc := fs.face(spanFont(&j.Source[si].Style, def))
			adv := fs.advance(fc, r)
			sg.glyphs = append(sg.glyphs, Glyph{Rune: r, Pos: math32.Vec2(x, 0), Advance: adv, Span: si})
			x += adv
		}
		sg.width = x
		sg.trimmed = x
		for i := len(sg.glyphs) - 1; i >= 0; i-- {
			if !unicode.IsSpace(sg.glyphs[i].Rune) {
				break
			}
			sg.trimmed -= sg.glyphs[i].Advance
		}
		segs = append(segs, sg)
	}
	return segs
}

// fillRows distributes segments into rows, wrapping greedily against
// the job's wrap width. The first row carries the job's leading-space
// indent. There is always at least one row.
func (fs *FaceShaper) fillRows(j *Job, segs []segment) []rowBuild {
	wrapOn := math32.IsFinite(j.WrapWidth)
	rows := []rowBuild{{indent: j.LeadingSpace}}
	cur := &rows[0]
	x := float32(0)

	finish := func(soft bool) {
		cur.soft = soft
		if soft {
			// whitespace at a soft break does not count toward row width
			for len(cur.glyphs) > 0 && unicode.IsSpace(cur.glyphs[len(cur.glyphs)-1].Rune) {
				cur.width -= cur.glyphs[len(cur.glyphs)-1].Advance
				cur.glyphs = cur.glyphs[:len(cur.glyphs)-1]
			}
		}
		rows = append(rows, rowBuild{})
		cur = &rows[len(rows)-1]
		x = 0
	}

	for _, sg := range segs {
		if wrapOn && (len(cur.glyphs) > 0 || cur.indent > 0) &&
			cur.indent+x+sg.trimmed > j.WrapWidth {
			finish(true)
		}
		for _, gl := range sg.glyphs {
			gl.Pos.X += x
			cur.glyphs = append(cur.glyphs, gl)
		}
		x += sg.width
		cur.width = x
		if sg.hard {
			finish(false)
		}
	}
	return rows
}

// justifyRows stretches the inter-glyph spaces of soft-wrapped rows so
// their content fills the wrap width. Rows ended by a newline and the
// final row are left alone.
func justifyRows(rows []rowBuild, wrapWidth float32) {
	for i := range rows {
		rb := &rows[i]
		if !rb.soft {
			continue
		}
		extra := wrapWidth - (rb.indent + rb.width)
		if extra <= 0 {
			continue
		}
		spaces := 0
		for _, gl := range rb.glyphs {
			if unicode.IsSpace(gl.Rune) {
				spaces++
			}
		}
		if spaces == 0 {
			continue
		}
		add := extra / float32(spaces)
		shift := float32(0)
		for gi := range rb.glyphs {
			rb.glyphs[gi].Pos.X += shift
			if unicode.IsSpace(rb.glyphs[gi].Rune) {
				rb.glyphs[gi].Advance += add
				shift += add
			}
		}
		rb.width += extra
	}
}

// finalize assigns row heights and vertical offsets, applies the
// horizontal alignment shift relative to the galley origin, and
// computes the overall bounds.
func (fs *FaceShaper) finalize(j *Job, def rich.TextStyles, g *Galley, rows []rowBuild) {
	defHt := math32.FromFixed(fs.Default.Metrics().Height)
	factor := j.Align.AlignFactor()
	y := float32(0)
	g.Bounds.SetEmpty()
	for i := range rows {
		rb := &rows[i]
		ht := defHt
		for _, gl := range rb.glyphs {
			fc := fs.face(spanFont(&j.Source[gl.Span].Style, def))
			ht = max(ht, math32.FromFixed(fc.Metrics().Height))
		}
		if i == 0 {
			ht = max(ht, j.FirstRowMinHeight)
		}
		lineWidth := rb.indent + rb.width
		shift := -factor * lineWidth
		row := Row{
			Bounds: math32.B2(shift+rb.indent, y, shift+lineWidth, y+ht),
			Glyphs: make([]Glyph, len(rb.glyphs)),
		}
		for gi, gl := range rb.glyphs {
			gl.Pos.X += shift + rb.indent
			gl.Pos.Y = y
			row.Glyphs[gi] = gl
		}
		g.Rows = append(g.Rows, row)
		g.Bounds.ExpandByBox(row.Bounds)
		y += ht
	}
}

func spanFont(s *rich.Style, def rich.TextStyles) rich.TextStyles {
	if s.Font != rich.Unset {
		return s.Font
	}
	return def
}
