/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "net/url"

// Parse parses rawURL as an absolute http or https URL, applying the
// WHATWG-style leniencies described in the package doc, and fails with a
// *Error on any of the five well-known violations of §7.
func Parse(rawURL string) (*URL, error) {
	return parseStrict(rawURL)
}

// ParseLenient parses rawURL the same way Parse does, but reports failure
// as ok=false instead of an error.
func ParseLenient(rawURL string) (u *URL, ok bool) {
	return parseLenient(rawURL)
}

// Of coerces src, a generic net/url.URL, into this package's stricter
// URL, failing with a *Error if src is not a valid http/https URL.
func Of(src *url.URL) (*URL, error) {
	if src == nil {
		return nil, &Error{Op: "of", URL: "", Err: ErrMissingScheme}
	}
	return parseStrict(src.String())
}

// From is the lenient counterpart of Of.
func From(src *url.URL) (*URL, bool) {
	return FromURL(src)
}

// QueryUnescape decodes a query name or value, rejecting malformed %HH
// sequences; '+' decodes to space.
func QueryUnescape(s string) (string, error) {
	return strictUnescape(s, true)
}

// QueryEscape encodes a decoded query name or value with the
// query-component encode set.
func QueryEscape(s string) string {
	return encodeComponent(s, codecOptions{mode: encodeQueryComponent, plusIsSpace: true, asciiOnly: true})
}

// PathUnescape decodes a path segment, rejecting malformed %HH sequences.
// Unlike QueryUnescape, '+' is left untouched.
func PathUnescape(s string) (string, error) {
	return strictUnescape(s, false)
}

// PathEscape encodes a decoded path segment with the path-segment encode
// set. Any '/' in s is escaped to %2F, matching addPathSegment's
// single-segment contract (§4.5).
func PathEscape(s string) string {
	return encodeComponent(s, codecOptions{mode: encodePathSegment, asciiOnly: true})
}
