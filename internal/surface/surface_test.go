package surface

import (
	"image/color"
	"testing"
)

type fakeDisplay struct {
	w, h   int16
	px     map[[2]int16]color.RGBA
	shown  int
	failed error
}

func newFake(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, px: map[[2]int16]color.RGBA{}}
}

func (f *fakeDisplay) Size() (int16, int16) { return f.w, f.h }

func (f *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.px[[2]int16{x, y}] = c
}

func (f *fakeDisplay) Display() error {
	f.shown++
	return f.failed
}

func (f *fakeDisplay) lit() int {
	n := 0
	for _, c := range f.px {
		if c != Off {
			n++
		}
	}
	return n
}

func TestFill(t *testing.T) {
	d := newFake(16, 8)
	s := New(d)
	s.Fill(On)
	if got := d.lit(); got != 16*8 {
		t.Errorf("lit after Fill(On) = %d, want %d", got, 16*8)
	}
	s.Fill(Off)
	if got := d.lit(); got != 0 {
		t.Errorf("lit after Fill(Off) = %d, want 0", got)
	}
	if d.shown != 0 {
		t.Errorf("Fill flushed the panel %d times", d.shown)
	}
}

func TestFillRect(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h int16
		want       int
	}{
		{"inside", 2, 1, 5, 3, 15},
		{"empty width", 2, 1, 0, 3, 0},
		{"empty height", 2, 1, 5, 0, 0},
		{"negative width", 2, 1, -4, 3, 0},
		{"clipped right", 14, 0, 5, 2, 4},
		{"clipped left", -2, 0, 5, 1, 3},
		{"clipped bottom", 0, 7, 2, 4, 2},
		{"fully outside", 20, 20, 5, 5, 0},
		{"whole surface", 0, 0, 16, 8, 128},
	}
	for _, tc := range cases {
		d := newFake(16, 8)
		s := New(d)
		if err := s.FillRect(tc.x, tc.y, tc.w, tc.h, On); err != nil {
			t.Errorf("%s: FillRect: %v", tc.name, err)
			continue
		}
		if got := d.lit(); got != tc.want {
			t.Errorf("%s: lit pixels\n  got  %d\n  want %d", tc.name, got, tc.want)
		}
	}
}

func TestRect(t *testing.T) {
	d := newFake(16, 8)
	s := New(d)
	if err := s.Rect(1, 1, 6, 4, On); err != nil {
		t.Fatal(err)
	}
	// perimeter of a 6x4 box
	if got, want := d.lit(), 2*6+2*(4-2); got != want {
		t.Errorf("lit pixels\n  got  %d\n  want %d", got, want)
	}
	if _, ok := d.px[[2]int16{3, 2}]; ok {
		t.Errorf("Rect filled the interior")
	}
	if err := s.Rect(1, 1, 0, 4, On); err != nil {
		t.Errorf("empty Rect: %v", err)
	}
}

func TestShow(t *testing.T) {
	d := newFake(16, 8)
	s := New(d)
	if err := s.Show(); err != nil {
		t.Fatal(err)
	}
	if d.shown != 1 {
		t.Errorf("shown = %d, want 1", d.shown)
	}
	if w, h := s.Size(); w != 16 || h != 8 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}
