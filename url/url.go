/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// PublicSuffixList provides the longest registrable domain suffix for a
// host, e.g. "co.uk" for "www.example.co.uk". Implementations must be
// safe for concurrent use. See Design Note "Global public-suffix table":
// this is injected rather than hidden process state so tests can
// substitute a fixture table.
type PublicSuffixList interface {
	PublicSuffix(host string) string
}

var (
	publicSuffixMu   sync.RWMutex
	publicSuffixImpl PublicSuffixList
)

// SetPublicSuffixList installs the list consulted by (*URL).TopPrivateDomain.
// Passing nil disables the accessor (it then always reports ok=false).
func SetPublicSuffixList(l PublicSuffixList) {
	publicSuffixMu.Lock()
	publicSuffixImpl = l
	publicSuffixMu.Unlock()
}

func currentPublicSuffixList() PublicSuffixList {
	publicSuffixMu.RLock()
	defer publicSuffixMu.RUnlock()
	return publicSuffixImpl
}

// Scheme returns the URL's scheme, always "http" or "https".
func (u *URL) Scheme() string { return u.scheme }

// EncodedUsername returns the percent-encoded username, "" if absent.
func (u *URL) EncodedUsername() string { return u.username }

// Username returns the decoded username, "" if absent.
func (u *URL) Username() string { return decodeComponent(u.username, false) }

// EncodedPassword returns the percent-encoded password, "" if absent.
func (u *URL) EncodedPassword() string { return u.password }

// Password returns the decoded password, "" if absent.
func (u *URL) Password() string { return decodeComponent(u.password, false) }

// Host returns the canonical host: IDN ASCII lowercase, bracket-free IPv6,
// or dotted-quad IPv4.
func (u *URL) Host() string { return u.host }

// IsIPv6 reports whether Host is an IPv6 literal (bracket-free).
func (u *URL) IsIPv6() bool { return u.isIPv6 }

// Port returns the effective port: the value from the input, or the
// scheme's default (80 for http, 443 for https) if none was given.
func (u *URL) Port() int { return u.port }

// PortSet reports whether the input carried an explicit, non-default
// port.
func (u *URL) PortSet() bool { return u.portSet }

// PathSize returns the number of path segments.
func (u *URL) PathSize() int { return len(u.segments) }

// EncodedPathSegments returns the percent-encoded path segments.
func (u *URL) EncodedPathSegments() []string {
	out := make([]string, len(u.segments))
	copy(out, u.segments)
	return out
}

// PathSegments returns the decoded path segments.
func (u *URL) PathSegments() []string {
	out := make([]string, len(u.segments))
	for i, s := range u.segments {
		out[i] = decodeComponent(s, false)
	}
	return out
}

// EncodedPath returns the percent-encoded absolute path ("/"-prefixed).
func (u *URL) EncodedPath() string { return joinPathSegments(u.segments) }

// HasQuery reports whether the URL carries a "?", even an empty one.
func (u *URL) HasQuery() bool { return u.hasQuery }

// EncodedQuery returns the raw percent-encoded query (without "?").
func (u *URL) EncodedQuery() string { return u.query }

// Query returns the decoded query (without "?"); '+' decodes to space.
func (u *URL) Query() string { return decodeQueryComponent(u.query) }

// QuerySize returns the number of name/value pairs in the query, 0 if
// HasQuery is false.
func (u *URL) QuerySize() int {
	if !u.hasQuery {
		return 0
	}
	return len(splitQueryPairs(u.query))
}

// QueryParameterName returns the decoded name of the i-th query pair.
func (u *URL) QueryParameterName(i int) string {
	return decodeQueryComponent(splitQueryPairs(u.query)[i].name)
}

// QueryParameterValue returns the decoded value of the i-th query pair,
// and whether that pair carried a value at all (as opposed to a bare
// name with no '=').
func (u *URL) QueryParameterValue(i int) (string, bool) {
	p := splitQueryPairs(u.query)[i]
	if p.value == nil {
		return "", false
	}
	return decodeQueryComponent(*p.value), true
}

// QueryParameterNames returns the distinct decoded names present in the
// query, in first-occurrence order.
func (u *URL) QueryParameterNames() []string {
	if !u.hasQuery {
		return nil
	}
	seen := make(map[string]bool)
	var names []string
	for _, p := range splitQueryPairs(u.query) {
		n := decodeQueryComponent(p.name)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

// QueryParameterValues returns, in order, the decoded values of every
// pair whose decoded name equals name. A pair with no '=' contributes an
// absent entry represented as (value="", ok=false) pairs collapsed to
// just the string "" here; callers needing to distinguish should use
// QueryParameterValue by index.
func (u *URL) QueryParameterValues(name string) []string {
	if !u.hasQuery {
		return nil
	}
	var out []string
	for _, p := range splitQueryPairs(u.query) {
		if decodeQueryComponent(p.name) != name {
			continue
		}
		if p.value == nil {
			out = append(out, "")
			continue
		}
		out = append(out, decodeQueryComponent(*p.value))
	}
	return out
}

// QueryParameter returns the first value associated with the decoded
// name, and whether any pair with that name was present.
func (u *URL) QueryParameter(name string) (string, bool) {
	if !u.hasQuery {
		return "", false
	}
	for _, p := range splitQueryPairs(u.query) {
		if decodeQueryComponent(p.name) == name {
			if p.value == nil {
				return "", true
			}
			return decodeQueryComponent(*p.value), true
		}
	}
	return "", false
}

// HasFragment reports whether the URL carries a "#".
func (u *URL) HasFragment() bool { return u.hasFragment }

// EncodedFragment returns the raw percent-encoded fragment.
func (u *URL) EncodedFragment() string { return u.fragment }

// Fragment returns the decoded fragment.
func (u *URL) Fragment() string { return decodeComponent(u.fragment, false) }

// Redact returns "<scheme>://<host>/...", suppressing userinfo, port,
// path, query, and fragment.
func (u *URL) Redact() string {
	return u.scheme + "://" + bracketHost(u) + "/..."
}

// WithoutFragment returns a copy of u with the fragment removed, per the
// round-trip property u.resolve("") == u.withoutFragment().
func (u *URL) WithoutFragment() *URL {
	cp := *u
	cp.hasFragment = false
	cp.fragment = ""
	cp.segments = append([]string(nil), u.segments...)
	return &cp
}

// TopPrivateDomain returns the registrable domain (public suffix plus one
// label) of Host, using the installed PublicSuffixList. ok is false when
// no list is installed, Host is an IP literal, or no such domain exists
// (e.g. Host is itself a public suffix).
func (u *URL) TopPrivateDomain() (string, bool) {
	if u.isIPv6 || looksLikeIPv4(u.host) {
		return "", false
	}
	list := currentPublicSuffixList()
	if list == nil {
		return "", false
	}
	suffix := list.PublicSuffix(u.host)
	if suffix == "" || suffix == u.host {
		return "", false
	}
	host := u.host
	rest := strings.TrimSuffix(host, "."+suffix)
	if rest == host {
		return "", false
	}
	if i := strings.LastIndexByte(rest, '.'); i >= 0 {
		rest = rest[i+1:]
	}
	return rest + "." + suffix, true
}

// String renders u in its canonical form, per §6.3.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.scheme)
	b.WriteString("://")

	if u.username != "" || u.password != "" {
		b.WriteString(u.username)
		if u.password != "" {
			b.WriteByte(':')
			b.WriteString(u.password)
		}
		b.WriteByte('@')
	}
	b.WriteString(bracketHost(u))
	if u.portSet {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	b.WriteString(joinPathSegments(u.segments))
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

func bracketHost(u *URL) string {
	if u.isIPv6 {
		return "[" + u.host + "]"
	}
	return u.host
}

// Equal reports whether u and other have identical fields, per §3.1's
// "for any two URLs, equality holds exactly when all fields are equal".
func (u *URL) Equal(other *URL) bool {
	if u == other {
		return true
	}
	if u == nil || other == nil {
		return false
	}
	if u.scheme != other.scheme || u.username != other.username || u.password != other.password ||
		u.host != other.host || u.isIPv6 != other.isIPv6 || u.port != other.port || u.portSet != other.portSet ||
		u.hasQuery != other.hasQuery || u.query != other.query ||
		u.hasFragment != other.hasFragment || u.fragment != other.fragment {
		return false
	}
	if len(u.segments) != len(other.segments) {
		return false
	}
	for i := range u.segments {
		if u.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Hash returns a value consistent with Equal: u.Equal(v) implies
// u.Hash() == v.Hash().
func (u *URL) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(u.String()))
	return h.Sum64()
}

// URI coerces u into a *net/url.URL suitable for passing to net/http, per
// §6.1's "of(uri)"/"from(uri)" coercion pair's export direction.
func (u *URL) URI() *url.URL {
	var ui *url.Userinfo
	if u.username != "" || u.password != "" {
		if u.password != "" {
			ui = url.UserPassword(u.Username(), u.Password())
		} else {
			ui = url.User(u.Username())
		}
	}
	host := u.host
	if u.isIPv6 {
		host = "[" + host + "]"
	}
	if u.portSet {
		host += ":" + strconv.Itoa(u.port)
	}
	raw := &url.URL{
		Scheme:   u.scheme,
		User:     ui,
		Host:     host,
		Path:     decodeComponent(u.EncodedPath(), false),
		RawPath:  u.EncodedPath(),
		RawQuery: u.query,
		Fragment: stripControls(u.Fragment()),
	}
	return raw
}

// FromURL coerces a *net/url.URL into this package's stricter URL,
// reporting ok=false if it is not a valid http/https URL under §4.
func FromURL(src *url.URL) (*URL, bool) {
	if src == nil {
		return nil, false
	}
	return parseLenient(src.String())
}
