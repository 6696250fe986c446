/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package publicsuffix

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"
)

func gzipLines(lines ...string) *bytes.Buffer {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(strings.Join(lines, "\n")))
	gz.Close()
	return &buf
}

func TestLoadFixturePublicSuffix(t *testing.T) {
	src := gzipLines("com", "co.uk", "// a comment", "", "uk")
	list, err := LoadFixture(src)
	if err != nil {
		t.Fatalf("LoadFixture error: %v", err)
	}

	tests := []struct {
		host string
		want string
	}{
		{"www.example.com", "com"},
		{"example.co.uk", "co.uk"},
		{"example.uk", "uk"},
		{"example.org", ""},
	}
	for _, tt := range tests {
		if got := list.PublicSuffix(tt.host); got != tt.want {
			t.Errorf("PublicSuffix(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestLoadFixtureWildcard(t *testing.T) {
	src := gzipLines("*")
	list, err := LoadFixture(src)
	if err != nil {
		t.Fatalf("LoadFixture error: %v", err)
	}
	if got, want := list.PublicSuffix("foo.bar.example"), "example"; got != want {
		t.Errorf("PublicSuffix(wildcard) = %q, want %q", got, want)
	}
}

func TestGolangXNetUnrecognizedSingleLabel(t *testing.T) {
	// A single-label host with no recognized suffix should report "" rather
	// than treating the host itself as a registrable domain.
	if got := (golangXNet{}).PublicSuffix("localhost"); got != "" {
		t.Errorf("PublicSuffix(localhost) = %q, want %q", got, "")
	}
}

func TestGolangXNetKnownSuffix(t *testing.T) {
	if got, want := (golangXNet{}).PublicSuffix("www.example.com"), "com"; got != want {
		t.Errorf("PublicSuffix(www.example.com) = %q, want %q", got, want)
	}
}
