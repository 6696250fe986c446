/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestCanonicalizeHostIPv6(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		isIPv6  bool
		wantErr bool
	}{
		{in: "[2001:db8:0:0:1:0:0:1]", want: "2001:db8::1:0:0:1", isIPv6: true},
		{in: "[::1]", want: "::1", isIPv6: true},
		{in: "[::]", want: "::", isIPv6: true},
		{in: "[2001:db8::1]:8080", want: "", wantErr: true}, // port must already be stripped by caller
		{in: "[::ffff:c0a8:1fe]", want: "192.168.1.254", isIPv6: false},
		{in: "[gggg::1]", wantErr: true},
		{in: "[::1", wantErr: true},
		{in: "[1:2:3:4:5:6:7:8:9]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, isIPv6, err := canonicalizeHost(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("canonicalizeHost(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("canonicalizeHost(%q) error: %v", tt.in, err)
			}
			if got != tt.want || isIPv6 != tt.isIPv6 {
				t.Errorf("canonicalizeHost(%q) = (%q, %v), want (%q, %v)", tt.in, got, isIPv6, tt.want, tt.isIPv6)
			}
		})
	}
}

func TestCanonicalizeHostIPv4(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "192.168.1.1", want: "192.168.1.1"},
		{in: "0.0.0.0", want: "0.0.0.0"},
		{in: "255.255.255.255", want: "255.255.255.255"},
		{in: "192.168.1.256", wantErr: true},
		{in: "192.168.01.1", wantErr: true},
		{in: "192.168.1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _, err := canonicalizeHost(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("canonicalizeHost(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("canonicalizeHost(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("canonicalizeHost(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeHostIDN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "EXAMPLE.com", want: "example.com"},
		{in: "example.com", want: "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _, err := canonicalizeHost(tt.in)
			if err != nil {
				t.Fatalf("canonicalizeHost(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("canonicalizeHost(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeHostRejectsForbiddenBytes(t *testing.T) {
	for _, in := range []string{"a b", "a#b", "a/b", "a?b", "a@b"} {
		if _, _, err := canonicalizeHost(in); err == nil {
			t.Errorf("canonicalizeHost(%q): expected error, got nil", in)
		}
	}
}

func TestFormatIPv6Idempotent(t *testing.T) {
	addr, err := parseIPv6("2001:db8::1:0:0:1")
	if err != nil {
		t.Fatalf("parseIPv6 error: %v", err)
	}
	formatted := formatIPv6(addr)
	addr2, err := parseIPv6(formatted)
	if err != nil {
		t.Fatalf("parseIPv6(%q) error: %v", formatted, err)
	}
	if formatIPv6(addr2) != formatted {
		t.Errorf("formatIPv6 not idempotent: %q != %q", formatIPv6(addr2), formatted)
	}
}
