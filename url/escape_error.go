/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strconv"

// EscapeError is returned by the strict exported unescape helpers
// (QueryUnescape, PathUnescape) when a '%' is not followed by two valid
// hex digits.
type EscapeError string

func (e EscapeError) Error() string {
	return "invalid URL escape " + strconv.Quote(string(e))
}

// InvalidHostError reports a host string supplied directly to a Builder
// setter that the host canonicalizer rejected; its value is the whole host
// as given.
type InvalidHostError string

func (e InvalidHostError) Error() string {
	return "invalid host name " + strconv.Quote(string(e))
}
