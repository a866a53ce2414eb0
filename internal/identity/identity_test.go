package identity

import "testing"

func TestIdenticalScalars(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"same string", "a", "a", true},
		{"different string", "a", "b", false},
		{"bools", true, true, true},
		{"float", 1.5, 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.a, tt.b); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIdenticalReferences(t *testing.T) {
	m := map[string]string{"color": "red"}
	other := map[string]string{"color": "red"}
	if !Identical(m, m) {
		t.Error("same map should be identical")
	}
	if Identical(m, other) {
		t.Error("equal maps with different storage should not be identical")
	}

	s := []int{1, 2, 3}
	if !Identical(s, s) {
		t.Error("same slice should be identical")
	}
	if Identical(s, s[:2]) {
		t.Error("reslice with different length should not be identical")
	}
	if Identical(s, []int{1, 2, 3}) {
		t.Error("copied slice should not be identical")
	}
}

func TestIdenticalFuncs(t *testing.T) {
	f := func() {}
	g := f
	if !Identical(f, g) {
		t.Error("copies of a func value should be identical")
	}

	mk := func(n int) func() int { return func() int { return n } }
	a, b := mk(1), mk(2)
	if Identical(a, b) {
		t.Error("distinct closures should not be identical")
	}
}

func TestIdenticalNonComparableStruct(t *testing.T) {
	type box struct{ v any }
	a := box{v: []int{1}}
	if Identical(a, a) {
		t.Error("struct holding a slice cannot be compared and should report false")
	}
	if !Identical(box{v: 1}, box{v: 1}) {
		t.Error("comparable struct values should compare by value")
	}
}

func TestSliceIdentical(t *testing.T) {
	if !SliceIdentical([]any{1, "a"}, []any{1, "a"}) {
		t.Error("pairwise identical lists should match")
	}
	if SliceIdentical([]any{1}, []any{1, 2}) {
		t.Error("length mismatch should not match")
	}
	if SliceIdentical([]any{1}, []any{2}) {
		t.Error("element mismatch should not match")
	}
	if !SliceIdentical(nil, []any{}) {
		t.Error("nil and empty lists have the same length")
	}
}

func TestIsFunc(t *testing.T) {
	var nilFn func()
	if IsFunc(nil) || IsFunc(1) || IsFunc(nilFn) {
		t.Error("IsFunc should be false for nil, non-funcs and nil funcs")
	}
	if !IsFunc(func() {}) {
		t.Error("IsFunc should be true for a func literal")
	}
}
