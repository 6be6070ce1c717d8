// Copyright (c) 2025, The psynlig authors.
// Distributed under the MIT License. See LICENSE for more info.

package colors

import (
	"reflect"
	"testing"
)

func TestQualitativeCounts(t *testing.T) {
	for _, n := range []int{1, 2, 3, 9, 10, 12, 13, 40} {
		cs, err := Qualitative(n)
		if err != nil {
			t.Errorf("Qualitative(%d): %v", n, err)
			continue
		}
		if len(cs) != n {
			t.Errorf("Qualitative(%d) returned %d colors", n, len(cs))
		}
	}
}

func TestQualitativeDistinct(t *testing.T) {
	cs, err := Qualitative(9)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[[4]uint32]bool)
	for _, c := range cs {
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		if seen[key] {
			t.Errorf("duplicate color %v", key)
		}
		seen[key] = true
	}
}

func TestQualitativeInvalid(t *testing.T) {
	if _, err := Qualitative(0); err == nil {
		t.Error("Qualitative(0) should fail")
	}
	if _, err := Qualitative(-3); err == nil {
		t.Error("Qualitative(-3) should fail")
	}
}

func TestClasses(t *testing.T) {
	class := []int{2, 0, 0, 2, 1}
	colorOf, rows, err := Classes(class)
	if err != nil {
		t.Fatal(err)
	}
	if len(colorOf) != 3 {
		t.Fatalf("got %d classes, want 3", len(colorOf))
	}
	wantRows := map[int][]int{0: {1, 2}, 1: {4}, 2: {0, 3}}
	if !reflect.DeepEqual(rows, wantRows) {
		t.Errorf("rows = %v, want %v", rows, wantRows)
	}
	if colorOf[0] == colorOf[1] || colorOf[1] == colorOf[2] || colorOf[0] == colorOf[2] {
		t.Error("classes share a color")
	}
}

func TestClassesNil(t *testing.T) {
	colorOf, rows, err := Classes(nil)
	if err != nil || colorOf != nil || rows != nil {
		t.Errorf("Classes(nil) = %v, %v, %v", colorOf, rows, err)
	}
}
