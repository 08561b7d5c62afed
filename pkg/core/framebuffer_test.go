package core

import (
	"image/color"
	"math"
	"testing"
)

func TestToByte_Truncates(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{0.10, 25},
		{0.11, 28},
		{0.5, 127},
		{1, 255},
		{1.7, 255},
		{-0.3, 0},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := ToByte(tt.in); got != tt.want {
			t.Errorf("ToByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFramebuffer_RowMajor(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, NewVec3(1, 0.5, 0))

	if got := fb.Pixels[1*3+2]; got != NewVec3(1, 0.5, 0) {
		t.Errorf("Expected pixel stored at index 5, got %v", got)
	}

	row := fb.Row(1)
	if len(row) != 3 || row[2] != NewVec3(1, 0.5, 0) {
		t.Errorf("Row(1) does not alias the pixel buffer: %v", row)
	}

	row[0] = NewVec3(0.2, 0.2, 0.2)
	if fb.Get(0, 1) != NewVec3(0.2, 0.2, 0.2) {
		t.Errorf("Writes through Row should be visible via Get")
	}
}

func TestFramebuffer_ImageInterface(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(1, 0, NewVec3(0.10, 0.10, 0.11))

	if b := fb.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Unexpected bounds %v", b)
	}

	got := fb.At(1, 0).(color.RGBA)
	want := color.RGBA{R: 25, G: 25, B: 28, A: 255}
	if got != want {
		t.Errorf("At(1,0) = %v, want %v", got, want)
	}

	if out := fb.At(5, 5).(color.RGBA); out != (color.RGBA{}) {
		t.Errorf("Out-of-bounds At should be transparent, got %v", out)
	}
}

func TestVec2_Operations(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -4)

	if got := a.Add(b); got != NewVec2(4, -2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec2(-2, 6) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(3); got != NewVec2(3, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := b.Divide(2); got != NewVec2(1.5, -2) {
		t.Errorf("Divide: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec2(3, -8) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := b.DivideVec(a); got != NewVec2(3, -2) {
		t.Errorf("DivideVec: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v", got)
	}
	if got := b.Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
}
