// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"github.com/gimui/gim/math32"
	"github.com/gimui/gim/styles"
)

// WidgetTypes is an enum of widget kinds reported in [WidgetInfo] for
// accessibility and introspection.
type WidgetTypes int32

const (
	// WidgetUnknown is an unclassified widget.
	WidgetUnknown WidgetTypes = iota

	// WidgetLabel is a text label.
	WidgetLabel

	// WidgetButton is a clickable button.
	WidgetButton
)

func (wt WidgetTypes) String() string {
	switch wt {
	case WidgetUnknown:
		return "Unknown"
	case WidgetLabel:
		return "Label"
	case WidgetButton:
		return "Button"
	}
	return "WidgetTypes(invalid)"
}

// WidgetInfo describes a widget for accessibility: its kind and its
// user-visible text.
type WidgetInfo struct {
	Type  WidgetTypes
	Label string
}

// Response reports what happened to a widget's allocated region this
// frame. It is produced by the [Ui] allocators, inspected by the
// caller for click/drag/hover outcomes, and discarded at the end of
// the frame.
type Response struct {

	// Rect is the region the response covers. For a widget spanning
	// several wrapped rows this is the union of the row rectangles;
	// hit testing happened per row.
	Rect math32.Box2

	// Sense is the set of interactions the region was registered for.
	Sense styles.Sense

	// Hovered is whether the pointer is over the region.
	Hovered bool

	// Pressed is whether the pointer is held down on the region.
	Pressed bool

	// Clicked is whether the region was clicked this frame.
	Clicked bool

	// Dragged is whether the region is being dragged this frame.
	Dragged bool

	// Focused is whether the region holds keyboard focus.
	Focused bool

	// Info describes the widget for accessibility.
	Info WidgetInfo
}

// Union combines this response with another covering a different part
// of the same widget. Boolean interaction flags combine with logical
// OR, so the result reports an interaction if ANY constituent region
// saw it. Geometry combines as the union of the rectangles. Auxiliary
// fields (Sense, Info) take the other response's value: last writer
// wins.
func (r Response) Union(o Response) Response {
	return Response{
		Rect:    r.Rect.Union(o.Rect),
		Sense:   o.Sense,
		Hovered: r.Hovered || o.Hovered,
		Pressed: r.Pressed || o.Pressed,
		Clicked: r.Clicked || o.Clicked,
		Dragged: r.Dragged || o.Dragged,
		Focused: r.Focused || o.Focused,
		Info:    o.Info,
	}
}

// HasFocus returns whether the widget holds keyboard focus.
func (r Response) HasFocus() bool {
	return r.Focused
}
