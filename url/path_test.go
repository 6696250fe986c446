/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"reflect"
	"testing"
)

func TestRemoveDotSegments(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{in: []string{"a", "b", "c"}, want: []string{"a", "b", "c"}},
		{in: []string{"a", "..", "b"}, want: []string{"b"}},
		{in: []string{"a", ".", "b"}, want: []string{"a", "b"}},
		{in: []string{"..", "a"}, want: []string{"a"}},
		{in: []string{"a", ".."}, want: []string{""}},
		{in: []string{"a", "."}, want: []string{"a", ""}},
		{in: []string{"b", "c", "..", "..", "..", "g"}, want: []string{"g"}},
		{in: []string{"%2E", "%2E", "a"}, want: []string{"a"}},
	}
	for _, tt := range tests {
		got := removeDotSegments(append([]string(nil), tt.in...))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("removeDotSegments(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRemoveDotSegmentsIdempotent(t *testing.T) {
	in := []string{"a", "..", "b", ".", "c"}
	once := removeDotSegments(append([]string(nil), in...))
	twice := removeDotSegments(append([]string(nil), once...))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("removeDotSegments not idempotent: %v != %v", once, twice)
	}
}

func TestSplitPathSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "/", want: []string{""}},
		{in: "", want: []string{""}},
		{in: "/a/b/c", want: []string{"a", "b", "c"}},
		{in: "/a/", want: []string{"a", ""}},
	}
	for _, tt := range tests {
		got := splitPathSegments(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitPathSegments(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAddPathSegments(t *testing.T) {
	base := []string{"a", "b", ""}
	got := addPathSegments(base, "c/d")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("addPathSegments(%v, %q) = %v, want %v", base, "c/d", got, want)
	}
}
