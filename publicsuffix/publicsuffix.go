/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package publicsuffix supplies the default url.PublicSuffixList
// implementation, backed by golang.org/x/net/publicsuffix. It also
// loads the gzip-compressed fixture blob produced by cmd/pslgen, so
// tests can substitute a smaller table without pulling in the full
// compiled-in list.
package publicsuffix

import (
	"bufio"
	"compress/gzip"
	"io"
	"strings"

	xpublicsuffix "golang.org/x/net/publicsuffix"

	"github.com/badu/httpurl/url"
)

// golangXNet wraps golang.org/x/net/publicsuffix's package-level
// PublicSuffix as a url.PublicSuffixList. It is the module's
// default list; Install wires it into the url package.
type golangXNet struct{}

func (golangXNet) PublicSuffix(host string) string {
	suffix, icann := xpublicsuffix.PublicSuffix(host)
	if !icann && !strings.Contains(suffix, ".") {
		// golang.org/x/net/publicsuffix returns the host itself, unchanged,
		// for an unrecognized single-label host; treat that as "no suffix"
		// rather than a (degenerate) registrable domain of the host.
		return ""
	}
	return suffix
}

// Default is the golang.org/x/net/publicsuffix-backed list.
var Default url.PublicSuffixList = golangXNet{}

// Install sets Default as the list consulted by (*url.URL).TopPrivateDomain.
// Kept as an explicit opt-in step (rather than an init-time side effect)
// so importing this package never silently changes url package behavior.
func Install() { url.SetPublicSuffixList(Default) }

// fixtureList is a small, explicit list loaded from a gzip blob in the
// format written by cmd/pslgen: one suffix per line, '\n'-terminated,
// ICANN and private sections concatenated with no distinction (this
// package's Contract only needs "is this a public suffix", not which
// section it came from).
type fixtureList struct {
	suffixes map[string]bool
}

// LoadFixture reads a gzip-compressed, newline-delimited suffix list
// produced by cmd/pslgen and returns a url.PublicSuffixList backed by it.
// Used by tests that want a small, deterministic table instead of the
// compiled-in golang.org/x/net list.
func LoadFixture(r io.Reader) (url.PublicSuffixList, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	suffixes := make(map[string]bool)
	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		suffixes[line] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &fixtureList{suffixes: suffixes}, nil
}

// PublicSuffix returns the longest dotted suffix of host present in the
// fixture table, or "" if none matches.
func (f *fixtureList) PublicSuffix(host string) string {
	labels := strings.Split(host, ".")
	for i := 0; i < len(labels); i++ {
		candidate := strings.Join(labels[i:], ".")
		if f.suffixes[candidate] {
			return candidate
		}
	}
	if f.suffixes["*"] {
		return strings.Join(labels[len(labels)-1:], ".")
	}
	return ""
}
