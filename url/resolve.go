/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// Resolve implements RFC 3986 §5.2 reference resolution (C7): base (u)
// combined with ref, per the deviations of §4.7 — a ref naming a scheme
// outside {http,https} fails outright; a ref repeating base's own scheme
// with fewer than two authority slashes has that scheme discarded and is
// resolved as a relative reference; '\' in the reference path is treated
// as '/' throughout.
//
// Grounded on contomap/iri's resolve.go (itself adapted from Go's
// net/url.go ResolveReference), restructured around this package's own
// tokenizer so the authority-slash tolerance of §4.4 applies uniformly to
// both Parse and Resolve.
func (u *URL) Resolve(ref string) (*URL, bool) {
	rp := tokenize(ref)

	if rp.hasScheme {
		if rp.scheme != HTTP && rp.scheme != HTTPS {
			return nil, false
		}
		if rp.scheme == u.scheme && rp.slashes < 2 {
			rp = tokenize(stripScheme(ref))
		}
	}

	b := u.NewBuilder()
	if rp.hasScheme {
		b.scheme = rp.scheme
	}

	if rp.hasAuthority {
		ph := &URL{scheme: b.scheme}
		if err := fillAuthority(ph, &rp, ref); err != nil {
			return nil, false
		}
		b.host, b.isIPv6 = ph.host, ph.isIPv6
		b.portSet, b.port = ph.portSet, ph.port
		b.username, b.password = ph.username, ph.password

		b.segments = removeDotSegments(encodePathSegments(splitPathSegments(rp.rawPath)))
		applyQueryFragment(b, &rp)
		return finishResolve(b)
	}

	switch {
	case rp.rawPath == "":
		b.segments = append([]string(nil), u.segments...)
		if rp.hasQuery {
			applyQueryOnly(b, &rp)
		} else if u.hasQuery {
			b.hasQuery = true
			b.queryPairs = splitQueryPairs(u.query)
		} else {
			b.hasQuery = false
			b.queryPairs = nil
		}
	case strings.HasPrefix(rp.rawPath, "/"):
		b.segments = removeDotSegments(encodePathSegments(splitPathSegments(rp.rawPath)))
		applyQueryOnly(b, &rp)
	default:
		b.segments = removeDotSegments(mergePaths(u.segments, rp.rawPath))
		applyQueryOnly(b, &rp)
	}

	if rp.hasFragment {
		b.hasFragment = true
		b.fragment = encodeComponent(rp.rawFragment, codecOptions{mode: encodeFragment, alreadyEncoded: true})
	} else {
		b.hasFragment = false
		b.fragment = ""
	}

	return finishResolve(b)
}

func finishResolve(b *Builder) (*URL, bool) {
	u, err := b.Build()
	if err != nil {
		return nil, false
	}
	return u, true
}

func stripScheme(ref string) string {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func applyQueryOnly(b *Builder, rp *rawParts) {
	if rp.hasQuery {
		b.hasQuery = true
		b.queryPairs = splitQueryPairs(encodeComponent(rp.rawQuery, codecOptions{mode: encodeQuery, alreadyEncoded: true, asciiOnly: true}))
	} else {
		b.hasQuery = false
		b.queryPairs = nil
	}
}

func applyQueryFragment(b *Builder, rp *rawParts) {
	applyQueryOnly(b, rp)
	if rp.hasFragment {
		b.hasFragment = true
		b.fragment = encodeComponent(rp.rawFragment, codecOptions{mode: encodeFragment, alreadyEncoded: true})
	} else {
		b.hasFragment = false
		b.fragment = ""
	}
}

// mergePaths implements RFC 3986 §5.3's merge routine: drop base's final
// segment, then append the reference's segments.
func mergePaths(baseSegments []string, refRawPath string) []string {
	merged := append([]string(nil), baseSegments...)
	if n := len(merged); n > 0 {
		merged = merged[:n-1]
	}
	return append(merged, encodePathSegments(splitPathSegments(refRawPath))...)
}
