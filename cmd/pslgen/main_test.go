/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseSuffixes(t *testing.T) {
	in := strings.Join([]string{
		"// ===BEGIN ICANN DOMAINS===",
		"com",
		"*.example.com",
		"!excluded.example.com",
		"",
		"co.uk",
	}, "\n")

	got, err := parseSuffixes(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parseSuffixes error: %v", err)
	}
	want := []string{"com", "*.example.com", "co.uk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseSuffixes() = %v, want %v", got, want)
	}
}

func TestParseSuffixesEmpty(t *testing.T) {
	got, err := parseSuffixes(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parseSuffixes error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("parseSuffixes(\"\") = %v, want empty", got)
	}
}
