package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue", "testdata/test2.cue"}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	if ptr := First[*string](loader, "str"); ptr == nil || *ptr != "bar" {
		t.Fatalf("got %v", ptr)
	}

	if list := First[[]int](loader, "nope"); list != nil {
		t.Fatalf("got %v", list)
	}
	if ptr := First[*string](NewStringLoader(testSchema, `list: []`), "str"); ptr != nil {
		t.Fatalf("got %v", ptr)
	}
}

func TestFirstPanicsOnBadSource(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[string](NewLoader([]string{"testdata/bad.cue"}, testSchema), "str")
}
