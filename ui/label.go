// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image/color"
	"log/slog"

	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/rich"
	"github.com/gimui/gim/shaped"
	"github.com/gimui/gim/styles"
)

// Label is static text. By default a label is inert and only receives
// keyboard focus; use [Label.SetSense] with [styles.SenseClick] to
// turn it into a button of sorts. Rich styling goes through the
// [rich] builder:
//
//	ui.NewRichLabel(rich.NewText(rich.NewStyle().SetFont(rich.Heading), []rune("Title")))
type Label struct {

	// Text is the styled text to display. Never nil; may be empty.
	Text rich.Text

	// Wrap overrides the ambient wrap policy of the enclosing layout.
	// By default text wraps in vertical layouts and in horizontal
	// layouts with wrapping, and does not in non-wrapping horizontal
	// layouts. Newlines in the text always produce a new row.
	Wrap styles.WrapModes

	// Sense is the set of interactions the label responds to.
	// Defaults to focusable but noninteractive.
	Sense styles.Sense
}

// NewLabel returns a new [Label] with the given plain text content.
func NewLabel(text string) *Label {
	return NewRichLabel(rich.NewPlainText(text))
}

// NewRichLabel returns a new [Label] with the given styled text
// content.
func NewRichLabel(tx rich.Text) *Label {
	return &Label{Text: tx, Sense: styles.SenseFocusableNoninteractive()}
}

// SetWrap sets the wrap override, returning the label for chaining.
func (lb *Label) SetWrap(wrap styles.WrapModes) *Label {
	lb.Wrap = wrap
	return lb
}

// SetSense sets the interactions the label responds to, returning the
// label for chaining.
func (lb *Label) SetSense(sense styles.Sense) *Label {
	lb.Sense = sense
	return lb
}

// PlainText returns the plain rune content of the label's text.
func (lb *Label) PlainText() string {
	return string(lb.Text.Join())
}

// layoutPaths is the tagged choice between the two layout strategies
// of a label, selected once per frame by [layoutPathFor].
type layoutPaths int32

const (
	// blockPath lays the galley out as a single block allocated at
	// the cursor, with the anchor placed by alignment.
	blockPath layoutPaths = iota

	// continuationPath starts the text mid-line after a sibling
	// widget on a shared wrapping row and continues on the lines
	// below, allocating and hit-testing each row separately.
	continuationPath
)

func (lp layoutPaths) String() string {
	if lp == continuationPath {
		return "continuation"
	}
	return "block"
}

// layoutPathFor selects the layout path. The continuation path
// applies only when all hold: the effective wrap flag is on, the
// enclosing layout runs left to right, it wraps along its main axis,
// and the available width is finite.
func layoutPathFor(u Ui, wrap bool) layoutPaths {
	if wrap && u.MainDir() == styles.LeftToRight && u.MainWrap() &&
		math32.IsFinite(u.AvailableWidth()) {
		return continuationPath
	}
	return blockPath
}

// shouldWrap resolves the label's wrap override against the ambient
// wrap policy. The resolution happens at layout time, so the same
// label can lay out differently under different layouts.
func (lb *Label) shouldWrap(u Ui) bool {
	return lb.Wrap.Resolve(u.WrapText())
}

// layoutJob builds the shaping job for the label: the text with the
// default Body style, the effective wrap width, and the leading-space
// offset for the first row.
func (lb *Label) layoutJob(u Ui, leadingSpace, availableWidth float32) *shaped.Job {
	wrapWidth := availableWidth
	if !lb.shouldWrap(u) {
		wrapWidth = math32.Infinity
	}
	j := shaped.NewJob(lb.Text)
	j.Style = rich.Body
	j.WrapWidth = wrapWidth
	j.LeadingSpace = leadingSpace
	return j
}

// layout builds the shaping job for the block path, resolving
// alignment and justification from the layout context. Grid cells
// always lay out left aligned and unjustified.
func (lb *Label) layout(u Ui) *shaped.Job {
	halign, justify := u.HorizontalPlacement(), u.HorizontalJustify()
	if u.IsGrid() {
		// TODO: remove special Grid hacks like these
		halign, justify = styles.Start, false
	}
	j := lb.layoutJob(u, 0, u.AvailableWidth())
	j.Align = halign
	j.Justify = justify
	return j
}

// anchorFor returns the galley anchor position within the given
// allocated rectangle for the given alignment: its left-top,
// center-top, or right-top.
func anchorFor(align styles.Aligns, rect math32.Box2) math32.Vector2 {
	switch align {
	case styles.Center:
		return rect.CenterTop()
	case styles.End:
		return rect.RightTop()
	}
	return rect.LeftTop()
}

// layoutInUI does layout and places the galley in the layout, without
// painting it or attaching widget info. It returns the galley anchor
// position, the galley, and the combined interaction response.
func (lb *Label) layoutInUI(u Ui) (math32.Vector2, *shaped.Galley, Response) {
	sense := lb.Sense

	if layoutPathFor(u, lb.shouldWrap(u)) == continuationPath {
		// On a wrapping horizontal layout the text starts after the
		// previous widget, then continues on the line below.
		maxWidth := u.AvailableWidth()
		cursor := u.Cursor()
		leadingSpace := maxWidth - u.AvailableSizeBeforeWrap().X
		if !math32.IsFinite(leadingSpace) {
			panic("ui.Label: continuation leading space must be finite")
		}

		j := lb.layoutJob(u, leadingSpace, maxWidth)
		j.FirstRowMinHeight = cursor.Size().Y
		j.Align = styles.Start
		j.Justify = false
		galley := u.Fonts().Shape(j)
		if len(galley.Rows) == 0 {
			panic("ui.Label: galleys are never empty")
		}

		pos := math32.Vec2(u.MaxRect().Min.X, cursor.Min.Y)
		// collect one response from many rows
		resp := u.AllocateRect(galley.Rows[0].Bounds.Translate(pos), sense)
		for _, row := range galley.Rows[1:] {
			resp = resp.Union(u.AllocateRect(row.Bounds.Translate(pos), sense))
		}
		return pos, galley, resp
	}

	j := lb.layout(u)
	galley := u.Fonts().Shape(j)
	rect, resp := u.AllocateExactSize(galley.Size(), sense)
	return anchorFor(j.Align, rect), galley, resp
}

// paintGalley draws the shaped text. focused means the label is
// selected with the keyboard, so it is highlighted with an underline.
// clr is the interaction-derived fallback color, used unless the text
// specifies its own colors.
func (lb *Label) paintGalley(u Ui, pos math32.Vector2, galley *shaped.Galley, focused bool, clr color.RGBA) {
	underline := styles.Stroke{}
	if focused {
		underline = styles.NewStroke(1, clr)
	}

	var override color.Color
	if !galley.HasColor {
		override = clr
	}

	u.Painter().Add(TextShape{
		Pos:           pos,
		Galley:        galley,
		OverrideColor: override,
		Underline:     underline,
		Angle:         0,
	})
}

// Show performs the full layout and paint pipeline for the label
// within the given layout context and returns its interaction
// response for this frame.
func (lb *Label) Show(u Ui) Response {
	pos, galley, resp := lb.layoutInUI(u)
	resp.Info = WidgetInfo{Type: WidgetLabel, Label: lb.PlainText()}
	if AppSettings.Debug.LayoutTrace {
		slog.Debug("label layout", "text", lb.PlainText(), "pos", pos, "rows", galley.NumRows())
	}
	vis := u.Style().Interact(resp)
	lb.paintGalley(u, pos, galley, resp.HasFocus(), vis.TextColor)
	return resp
}
