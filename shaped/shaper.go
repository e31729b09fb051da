// Copyright (c) 2026, The Gim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

// Shaper is a text shaping system that turns a [Job] into a measured,
// row-wrapped [Galley]. Implementations must return a galley with at
// least one row, even for empty input. Repeated identical requests
// within a frame may be memoized by the implementation; callers must
// not rely on it.
type Shaper interface {

	// Shape shapes the given job into a galley. The result belongs to
	// the caller and is not retained by the shaper.
	Shape(j *Job) *Galley
}
