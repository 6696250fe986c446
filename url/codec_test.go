/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestEncodeComponentQuantified(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		c := byte(b)
		set := encodeSetFor(encodePathSegment)
		got := encodeComponent(string(c), codecOptions{mode: encodePathSegment, asciiOnly: true})
		if set.contains(c) {
			want := "%" + string(upperhex[c>>4]) + string(upperhex[c&0xF])
			if got != want {
				t.Errorf("encode(%q) = %q, want %q (forced)", c, got, want)
			}
		} else {
			if got != string(c) {
				t.Errorf("encode(%q) = %q, want %q (literal)", c, got, string(c))
			}
		}
	}
}

// TestEncodeComponentQuantifiedNonASCII covers §8's "for every non-ASCII
// code point cp and component other than fragment, encode(cp) equals the
// percent-encoding of its UTF-8 bytes in uppercase hex" property.
func TestEncodeComponentQuantifiedNonASCII(t *testing.T) {
	for _, r := range []rune{'π', '€', 'é', '\U0001F600'} {
		in := string(r)
		var want string
		for _, b := range []byte(in) {
			want += "%" + string(upperhex[b>>4]) + string(upperhex[b&0xF])
		}
		got := encodeComponent(in, codecOptions{mode: encodePathSegment, asciiOnly: true})
		if got != want {
			t.Errorf("encode(%q, asciiOnly) = %q, want %q", in, got, want)
		}
	}
}

// TestEncodeComponentFragmentAllowsNonASCII covers the spec's footnote
// carve-out: the fragment component alone is built with asciiOnly=false,
// so non-ASCII code points pass through literally instead of being
// percent-encoded.
func TestEncodeComponentFragmentAllowsNonASCII(t *testing.T) {
	in := "café"
	got := encodeComponent(in, codecOptions{mode: encodeFragment})
	if got != in {
		t.Errorf("encode(%q, fragment) = %q, want literal %q", in, got, in)
	}
}

func TestEncodeAlreadyEncodedIdempotent(t *testing.T) {
	in := "already%20encoded%2Fpath"
	once := encodeComponent(in, codecOptions{mode: encodePathSegment, alreadyEncoded: true})
	twice := encodeComponent(once, codecOptions{mode: encodePathSegment, alreadyEncoded: true})
	if once != twice {
		t.Errorf("encodeComponent not idempotent under alreadyEncoded: %q != %q", once, twice)
	}
	if once != in {
		t.Errorf("encodeComponent(%q, alreadyEncoded) = %q, want identity", in, once)
	}
}

func TestDecodeComponentMalformedPercent(t *testing.T) {
	got := decodeComponent("100%", false)
	if got != "100%" {
		t.Errorf("decodeComponent(%q) = %q, want %q", "100%", got, "100%")
	}
	got2 := decodeComponent("100%zz", false)
	if got2 != "100%zz" {
		t.Errorf("decodeComponent(%q) = %q, want %q", "100%zz", got2, "100%zz")
	}
}

func TestDecodeComponentRoundTrip(t *testing.T) {
	in := "hello world/π€"
	enc := encodeComponent(in, codecOptions{mode: encodeQueryComponent, asciiOnly: true})
	dec := decodeComponent(enc, false)
	if dec != in {
		t.Errorf("round trip failed: %q -> %q -> %q", in, enc, dec)
	}
}

func TestStrictUnescapeRejectsMalformed(t *testing.T) {
	if _, err := strictUnescape("100%", false); err == nil {
		t.Error("strictUnescape(\"100%\"): expected error")
	}
	if _, err := strictUnescape("100%zz", false); err == nil {
		t.Error("strictUnescape(\"100%zz\"): expected error")
	}
	got, err := strictUnescape("100%20", false)
	if err != nil || got != "100 " {
		t.Errorf("strictUnescape(\"100%%20\") = (%q, %v), want (%q, nil)", got, err, "100 ")
	}
}

func TestQueryEscapeUnescape(t *testing.T) {
	in := "a b+c"
	enc := QueryEscape(in)
	dec, err := QueryUnescape(enc)
	if err != nil {
		t.Fatalf("QueryUnescape error: %v", err)
	}
	if dec != in {
		t.Errorf("QueryUnescape(QueryEscape(%q)) = %q, want %q", in, dec, in)
	}
}

// TestNonASCIIPercentEncodedInRealComponents exercises §4.1's asciiOnly rule
// through the actual public entry points rather than encodeComponent
// directly: non-ASCII in userinfo, a path segment, and a query parameter
// must all come out percent-encoded end to end.
func TestNonASCIIPercentEncodedInRealComponents(t *testing.T) {
	u, err := NewBuilder().
		Scheme("http").
		Username("usér").
		Host("host").
		AddPathSegment("café").
		AddQueryParameter("naïve", "résumé").
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got, want := u.EncodedUsername(), "us%C3%A9r"; got != want {
		t.Errorf("EncodedUsername() = %q, want %q", got, want)
	}
	if got, want := u.EncodedPathSegments()[0], "caf%C3%A9"; got != want {
		t.Errorf("EncodedPathSegments()[0] = %q, want %q", got, want)
	}
	if v, ok := u.QueryParameter("naïve"); !ok || v != "résumé" {
		t.Errorf("QueryParameter(naïve) = (%q, %v), want (%q, true)", v, ok, "résumé")
	}
	if got, want := u.EncodedQuery(), "na%C3%AFve=r%C3%A9sum%C3%A9"; got != want {
		t.Errorf("EncodedQuery() = %q, want %q", got, want)
	}
}

func TestPathEscapeEncodesSlash(t *testing.T) {
	got := PathEscape("a/b")
	if got != "a%2Fb" {
		t.Errorf("PathEscape(\"a/b\") = %q, want %q", got, "a%2Fb")
	}
}
