/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"errors"
	"strconv"
)

// Error reports an error and the operation and URL that caused it.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string { return e.Op + " " + e.URL + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Timeout() bool {
	t, ok := e.Err.(timeout)
	return ok && t.Timeout()
}

func (e *Error) Temporary() bool {
	t, ok := e.Err.(temporary)
	return ok && t.Temporary()
}

type timeout interface {
	Timeout() bool
}

type temporary interface {
	Temporary() bool
}

// Sentinel errors for the well-known strict-parse and Build failures of §7.
// ErrBadScheme, ErrBadHost and ErrBadPort are never returned directly: each
// is wrapped by a small error value that also carries the offending raw
// text, so (*Error).Error() can render the exact historical message while
// callers can still errors.Is against the sentinel. The others carry no
// raw text and are used as (*Error).Err as they are.
var (
	// ErrMissingColon is reported when no ':' separating a scheme from the
	// rest of the URL can be found at all.
	ErrMissingColon = errors.New("Expected URL scheme 'http' or 'https' but no colon was found")

	// ErrBadScheme is reported when a scheme is present but is neither
	// "http" nor "https" (case-insensitively).
	ErrBadScheme = errors.New("bad URL scheme")

	// ErrBadHost is reported when the host canonicalizer (§4.2) rejects the
	// authority's host.
	ErrBadHost = errors.New("bad URL host")

	// ErrBadPort is reported when an explicit port is non-numeric or
	// outside 1..65535.
	ErrBadPort = errors.New("bad URL port")

	// ErrMissingScheme and ErrMissingHost are Builder.Build's contract
	// violations: scheme and host are the two fields required to build.
	ErrMissingScheme = errors.New("scheme == null")
	ErrMissingHost   = errors.New("host == null")

	// ErrNoAuthority is reported when fewer than two slashes follow the
	// scheme and no authority text follows them either (e.g. "http:" or
	// "http:/path"); "http:host" still parses its authority.
	ErrNoAuthority = errors.New("expected //authority after scheme")
)

// schemeError renders "Expected URL scheme 'http' or 'https' but was
// '<raw>'" while still satisfying errors.Is(err, ErrBadScheme).
type schemeError struct{ raw string }

func (e *schemeError) Error() string {
	return "Expected URL scheme 'http' or 'https' but was '" + e.raw + "'"
}

func (e *schemeError) Is(target error) bool { return target == ErrBadScheme }

func badSchemeError(raw string) error { return &schemeError{raw: raw} }

// hostError renders `Invalid URL host: "<raw>"` while still satisfying
// errors.Is(err, ErrBadHost).
type hostError struct{ raw string }

func (e *hostError) Error() string { return "Invalid URL host: " + strconv.Quote(e.raw) }

func (e *hostError) Is(target error) bool { return target == ErrBadHost }

func badHostError(raw string) error { return &hostError{raw: raw} }

// portError renders `Invalid URL port: "<raw>"` while still satisfying
// errors.Is(err, ErrBadPort).
type portError struct{ raw string }

func (e *portError) Error() string { return "Invalid URL port: " + strconv.Quote(e.raw) }

func (e *portError) Is(target error) bool { return target == ErrBadPort }

func badPortError(raw string) error { return &portError{raw: raw} }
