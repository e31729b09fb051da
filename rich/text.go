// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"slices"
)

// Span is a run of runes sharing one [Style].
type Span struct {
	Style Style
	Text  []rune
}

// Text is the basic rich text representation: an ordered sequence of
// styled [Span] elements. Text values are constructed, laid out, and
// discarded within a single frame; they carry no layout state.
type Text []Span

// NewText returns a new [Text] starting with the given style and runes,
// which can be empty.
func NewText(s *Style, r []rune) Text {
	tx := Text{}
	tx.AddSpan(s, r)
	return tx
}

// NewPlainText returns a new [Text] with the default style and the
// given string content.
func NewPlainText(str string) Text {
	return NewText(NewStyle(), []rune(str))
}

// NumSpans returns the number of spans in this text.
func (tx Text) NumSpans() int {
	return len(tx)
}

// Len returns the total number of runes in this text.
func (tx Text) Len() int {
	n := 0
	for _, sp := range tx {
		n += len(sp.Text)
	}
	return n
}

// AddSpan adds a span to the text with the given style and runes,
// returning the text for chaining.
func (tx *Text) AddSpan(s *Style, r []rune) *Text {
	*tx = append(*tx, Span{Style: *s, Text: r})
	return tx
}

// AddRunes adds the given runes to the last span, or to a new default
// span if the text is empty.
func (tx *Text) AddRunes(r []rune) *Text {
	n := len(*tx)
	if n == 0 {
		return tx.AddSpan(NewStyle(), r)
	}
	(*tx)[n-1].Text = append((*tx)[n-1].Text, r...)
	return tx
}

// Join returns a single slice of runes with the contents of all spans.
func (tx Text) Join() []rune {
	rn := make([]rune, 0, tx.Len())
	for _, sp := range tx {
		rn = append(rn, sp.Text...)
	}
	return rn
}

// Clone returns a deep copy of this text, with copies of the span
// rune slices.
func (tx Text) Clone() Text {
	nt := make(Text, len(tx))
	for i, sp := range tx {
		nt[i] = Span{Style: sp.Style, Text: slices.Clone(sp.Text)}
	}
	return nt
}

// HasColor returns whether any non-empty span specifies an explicit
// text color. When true, interaction-derived color overrides do not
// apply when the text is painted.
func (tx Text) HasColor() bool {
	for _, sp := range tx {
		if len(sp.Text) > 0 && sp.Style.Color != nil {
			return true
		}
	}
	return false
}

// HasFont returns whether any non-empty span specifies an explicit
// named text style.
func (tx Text) HasFont() bool {
	for _, sp := range tx {
		if len(sp.Text) > 0 && sp.Style.Font != Unset {
			return true
		}
	}
	return false
}

func (tx Text) String() string {
	str := ""
	for _, sp := range tx {
		str += fmt.Sprintf("[%s]: %q\n", sp.Style.String(), string(sp.Text))
	}
	return str
}

// Join joins multiple texts into one text, appending the spans.
func Join(txts ...Text) Text {
	nt := Text{}
	for _, tx := range txts {
		nt = append(nt, tx...)
	}
	return nt
}
