/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// Builder stages mutations to a URL's components before validating them
// into an immutable value with Build. A Builder is single-owner mutable
// state (§5) and must not be shared across goroutines without external
// synchronization.
type Builder struct {
	err error

	hasScheme bool
	scheme    string

	username string
	password string

	hasHost bool
	host    string
	isIPv6  bool

	portSet bool
	port    int

	segments []string

	hasQuery   bool
	queryPairs []queryPair

	hasFragment bool
	fragment    string
}

// NewBuilder returns an empty Builder; Scheme and Host must both be set
// before Build succeeds.
func NewBuilder() *Builder {
	return &Builder{segments: []string{""}}
}

// NewBuilder returns a Builder seeded with every field of u, so that
// modifying and rebuilding produces a new URL that differs only in the
// fields explicitly changed.
func (u *URL) NewBuilder() *Builder {
	b := &Builder{
		hasScheme: true,
		scheme:    u.scheme,
		username:  u.username,
		password:  u.password,
		hasHost:   true,
		host:      u.host,
		isIPv6:    u.isIPv6,
		portSet:   u.portSet,
		port:      u.port,
		segments:  append([]string(nil), u.segments...),
	}
	if u.hasQuery {
		b.hasQuery = true
		b.queryPairs = splitQueryPairs(u.query)
	}
	if u.hasFragment {
		b.hasFragment = true
		b.fragment = u.fragment
	}
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Scheme sets the scheme, which must be "http" or "https" (matched
// case-insensitively).
func (b *Builder) Scheme(scheme string) *Builder {
	lower := lowerASCII(scheme)
	if lower != HTTP && lower != HTTPS {
		b.setErr(badSchemeError(scheme))
		return b
	}
	b.hasScheme = true
	b.scheme = lower
	return b
}

func lowerASCII(s string) string {
	out := []byte(s)
	for i, c := range out {
		if 'A' <= c && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}

// Username sets the decoded username.
func (b *Builder) Username(username string) *Builder {
	b.username = encodeComponent(username, codecOptions{mode: encodeUsername, asciiOnly: true})
	return b
}

// EncodedUsername sets an already percent-encoded username.
func (b *Builder) EncodedUsername(encoded string) *Builder {
	b.username = encodeComponent(encoded, codecOptions{mode: encodeUsername, alreadyEncoded: true, asciiOnly: true})
	return b
}

// Password sets the decoded password.
func (b *Builder) Password(password string) *Builder {
	b.password = encodeComponent(password, codecOptions{mode: encodePassword, asciiOnly: true})
	return b
}

// EncodedPassword sets an already percent-encoded password.
func (b *Builder) EncodedPassword(encoded string) *Builder {
	b.password = encodeComponent(encoded, codecOptions{mode: encodePassword, alreadyEncoded: true, asciiOnly: true})
	return b
}

// Host sets the host, running it through the §4.2 canonicalizer.
// Invalid input records an InvalidHostError that Build returns.
func (b *Builder) Host(host string) *Builder {
	canon, isIPv6, err := canonicalizeHost(host)
	if err != nil {
		b.setErr(InvalidHostError(host))
		return b
	}
	b.hasHost = true
	b.host = canon
	b.isIPv6 = isIPv6
	return b
}

// Port sets an explicit port in 1..65535. Passing 0 clears any explicit
// port, reverting to the scheme's default at Build time.
func (b *Builder) Port(port int) *Builder {
	if port == 0 {
		b.portSet = false
		return b
	}
	if port < 1 || port > 65535 {
		b.setErr(badPortError(intToString(port)))
		return b
	}
	b.portSet = true
	b.port = port
	return b
}

func intToString(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// AddPathSegment appends one decoded segment; any '/' within it is
// percent-encoded to %2F rather than treated as a separator (§4.5).
func (b *Builder) AddPathSegment(segment string) *Builder {
	if n := len(b.segments); n > 0 && b.segments[n-1] == "" {
		b.segments = b.segments[:n-1]
	}
	b.segments = append(b.segments, encodeComponent(segment, codecOptions{mode: encodePathSegment, asciiOnly: true}))
	return b
}

// AddEncodedPathSegment is AddPathSegment for an already percent-encoded
// segment.
func (b *Builder) AddEncodedPathSegment(segment string) *Builder {
	if n := len(b.segments); n > 0 && b.segments[n-1] == "" {
		b.segments = b.segments[:n-1]
	}
	b.segments = append(b.segments, encodeComponent(segment, codecOptions{mode: encodePathSegment, alreadyEncoded: true, asciiOnly: true}))
	return b
}

// AddPathSegments splits s on '/' (after normalizing '\' to '/'),
// appends each piece as its own segment, and dot-normalizes the result
// (§4.5).
func (b *Builder) AddPathSegments(s string) *Builder {
	b.segments = addPathSegments(b.segments, s)
	return b
}

// SetPathSegment replaces the decoded value of the i-th segment. Passing
// "." or ".." panics: these are contract violations, not recoverable
// input errors (§10.1).
func (b *Builder) SetPathSegment(i int, segment string) *Builder {
	if segment == "." || segment == ".." {
		panic("url: path segment must not be \".\" or \"..\"")
	}
	b.segments[i] = encodeComponent(segment, codecOptions{mode: encodePathSegment, asciiOnly: true})
	return b
}

// Query replaces the entire query with the given already percent-encoded
// raw query string (§4.6). An empty string still sets a present-but-empty
// query; use ClearQuery to remove it entirely.
func (b *Builder) Query(rawEncodedQuery string) *Builder {
	b.hasQuery = true
	b.queryPairs = splitQueryPairs(rawEncodedQuery)
	return b
}

// ClearQuery removes the query entirely (HasQuery becomes false).
func (b *Builder) ClearQuery() *Builder {
	b.hasQuery = false
	b.queryPairs = nil
	return b
}

// AddQueryParameter appends a decoded name/value pair.
func (b *Builder) AddQueryParameter(name, value string) *Builder {
	v := encodeQueryValue(value, false)
	b.hasQuery = true
	b.queryPairs = append(b.queryPairs, queryPair{name: encodeQueryName(name, false), value: &v})
	return b
}

// AddQueryParameterNoValue appends a bare decoded name with no '='.
func (b *Builder) AddQueryParameterNoValue(name string) *Builder {
	b.hasQuery = true
	b.queryPairs = append(b.queryPairs, queryPair{name: encodeQueryName(name, false)})
	return b
}

// AddEncodedQueryParameter is AddQueryParameter for an already
// percent-encoded name and value.
func (b *Builder) AddEncodedQueryParameter(name, value string) *Builder {
	v := encodeQueryValue(value, true)
	b.hasQuery = true
	b.queryPairs = append(b.queryPairs, queryPair{name: encodeQueryName(name, true), value: &v})
	return b
}

// RemoveAllQueryParameters removes every pair whose decoded name equals
// name.
func (b *Builder) RemoveAllQueryParameters(name string) *Builder {
	kept := b.queryPairs[:0:0]
	for _, p := range b.queryPairs {
		if !queryPairNameEquals(p.name, name) {
			kept = append(kept, p)
		}
	}
	b.queryPairs = kept
	return b
}

// SetQueryParameter replaces every pair named name with a single
// name/value pair, appending it if none existed.
func (b *Builder) SetQueryParameter(name, value string) *Builder {
	b.RemoveAllQueryParameters(name)
	return b.AddQueryParameter(name, value)
}

// Fragment sets the decoded fragment.
func (b *Builder) Fragment(fragment string) *Builder {
	b.hasFragment = true
	b.fragment = encodeComponent(fragment, codecOptions{mode: encodeFragment})
	return b
}

// EncodedFragment sets an already percent-encoded fragment.
func (b *Builder) EncodedFragment(encoded string) *Builder {
	b.hasFragment = true
	b.fragment = encodeComponent(encoded, codecOptions{mode: encodeFragment, alreadyEncoded: true})
	return b
}

// ClearFragment removes the fragment entirely.
func (b *Builder) ClearFragment() *Builder {
	b.hasFragment = false
	b.fragment = ""
	return b
}

// Build validates the accumulated state into an immutable URL, failing
// with ErrMissingScheme or ErrMissingHost if either required field was
// never set, or with whatever error an earlier setter recorded.
func (b *Builder) Build() (*URL, error) {
	if b.err != nil {
		return nil, &Error{Op: "build", Err: b.err}
	}
	if !b.hasScheme {
		return nil, &Error{Op: "build", Err: ErrMissingScheme}
	}
	if !b.hasHost {
		return nil, &Error{Op: "build", Err: ErrMissingHost}
	}

	u := &URL{
		scheme:   b.scheme,
		username: b.username,
		password: b.password,
		host:     b.host,
		isIPv6:   b.isIPv6,
	}
	if b.portSet && b.port != defaultPort(b.scheme) {
		u.port = b.port
		u.portSet = true
	} else {
		u.port = defaultPort(b.scheme)
	}

	segs := b.segments
	if len(segs) == 0 {
		segs = []string{""}
	}
	u.segments = removeDotSegments(append([]string(nil), segs...))

	if b.hasQuery {
		u.hasQuery = true
		u.query = joinQueryPairs(b.queryPairs)
	}
	if b.hasFragment {
		u.hasFragment = true
		u.fragment = b.fragment
	}
	return u, nil
}
