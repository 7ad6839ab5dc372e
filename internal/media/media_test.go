package media

import (
	"testing"
)

func TestLoadSplash(t *testing.T) {
	img, err := LoadImage(TypeSplash, "default")
	if err != nil {
		t.Fatal(err)
	}
	w, h := TypeSplash.Size()
	b := img.Bounds()
	if b.Dx() != int(w) || b.Dy() != int(h) {
		t.Errorf("bounds = %v, want %dx%d", b, w, h)
	}
	// the splash is framed by a one pixel border
	if r, _, _, _ := img.At(0, 0).RGBA(); r == 0 {
		t.Errorf("corner pixel is dark")
	}
	if r, _, _, _ := img.At(2, 2).RGBA(); r != 0 {
		t.Errorf("pixel inside the border is lit")
	}
}

func TestLoadImageErrors(t *testing.T) {
	cases := []struct {
		typ  Type
		name string
	}{
		{TypeSplash, "missing"},
		{Type("eyes"), "default"},
		{Type(""), "default"},
	}
	for _, tc := range cases {
		if _, err := LoadImage(tc.typ, tc.name); err == nil {
			t.Errorf("LoadImage(%q, %q) returned no error", tc.typ, tc.name)
		}
	}
}
