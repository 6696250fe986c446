/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// splitPathSegments turns a raw path (already had '\' mapped to '/' by the
// caller per §4.4 step 5) into the encoded-segment slice described by
// §3.1: an absolute path always starts with an implied '/', so the first
// element of the returned slice may be empty, and a bare "/" becomes a
// single empty segment.
func splitPathSegments(rawPath string) []string {
	p := rawPath
	if strings.HasPrefix(p, "/") {
		p = p[1:]
	}
	if p == "" {
		return []string{""}
	}
	return strings.Split(p, "/")
}

// encodePathSegments percent-encodes each raw segment with the
// path-segment encode set, alreadyEncoded=true (the input may already
// contain %HH triplets from the source URL).
func encodePathSegments(raw []string) []string {
	out := make([]string, len(raw))
	for i, s := range raw {
		out[i] = encodeComponent(s, codecOptions{mode: encodePathSegment, alreadyEncoded: true, asciiOnly: true})
	}
	return out
}

// isDotSegment reports whether encoded segment s denotes "." once a
// targeted percent-decode of just %2E/%2e triplets is applied, per
// Design Note "Dot-segment semantics after percent decoding" (§9): this
// must not run a full component decode, only recognize %2E as '.'.
func isDotSegment(s string) (dot bool, dotdot bool) {
	d := decodeDotsOnly(s)
	switch d {
	case ".":
		return true, false
	case "..":
		return false, true
	default:
		return false, false
	}
}

// decodeDotsOnly decodes only %2E/%2e triplets to '.', leaving every other
// byte (including other percent triplets) untouched, so that a segment
// like "%2e%2e" is recognized as ".." while "%41" (an encoded "A") is not
// mistaken for anything but itself.
func decodeDotsOnly(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) && s[i+1] == '2' && (s[i+2] == 'E' || s[i+2] == 'e') {
			out.WriteByte('.')
			i += 3
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// removeDotSegments implements §4.5's segment-basis dot-segment removal,
// the RFC 3986 §5.2.4 algorithm adapted to operate on an already-split
// segment slice rather than a raw character buffer. Grounded on
// contomap/iri's resolve.go remove_dot_segments (itself derived from Go's
// net/url.go), generalized here to run on segments instead of path bytes
// so that %2E-encoded dots are recognized per §9's design note.
func removeDotSegments(segs []string) []string {
	out := make([]string, 0, len(segs))
	for i, seg := range segs {
		dot, dotdot := isDotSegment(seg)
		last := i == len(segs)-1
		switch {
		case dot:
			if last {
				out = append(out, "")
			}
		case dotdot:
			if n := len(out); n > 0 {
				out = out[:n-1]
			}
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// joinPathSegments renders encoded segments back into an absolute path
// string ("/" + "/"-joined segments).
func joinPathSegments(segs []string) string {
	return "/" + strings.Join(segs, "/")
}

// addPathSegments implements Builder.addPathSegments (§4.5): '\' becomes
// '/', the argument is split on '/', a trailing empty segment on base is
// dropped before appending, and the combined slice is dot-normalized.
func addPathSegments(base []string, raw string) []string {
	raw = strings.ReplaceAll(raw, `\`, "/")
	pieces := strings.Split(raw, "/")

	combined := base
	if n := len(combined); n > 0 && combined[n-1] == "" {
		combined = combined[:n-1]
	}
	combined = append(append([]string(nil), combined...), encodePathSegments(pieces)...)
	return removeDotSegments(combined)
}
