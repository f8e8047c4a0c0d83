package model

import "testing"

func TestBBoxDimensions(t *testing.T) {
	b := NewBBox(10, 20, 110, 35)

	if b.Width() != 100 {
		t.Errorf("Width() = %v, want 100", b.Width())
	}
	if b.Height() != 15 {
		t.Errorf("Height() = %v, want 15", b.Height())
	}
	if !b.IsValid() {
		t.Error("expected box to be valid")
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 20, 12)

	u := a.Union(b)
	want := NewBBox(0, 0, 20, 12)
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(10, 10, 20, 20)

	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{20, 20, true},
		{9, 15, false},
		{15, 21, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBBoxInvalid(t *testing.T) {
	if NewBBox(10, 10, 10, 20).IsValid() {
		t.Error("zero-width box should not be valid")
	}
	if NewBBox(10, 10, 20, 5).IsValid() {
		t.Error("negative-height box should not be valid")
	}
}

func TestLevelName(t *testing.T) {
	if got := LevelName(1); got != "level 1" {
		t.Errorf("LevelName(1) = %q, want %q", got, "level 1")
	}
	if got := LevelName(12); got != "level 12" {
		t.Errorf("LevelName(12) = %q, want %q", got, "level 12")
	}
}
