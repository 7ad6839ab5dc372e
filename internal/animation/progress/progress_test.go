package progress

import (
	"image/color"
	"testing"

	"github.com/ajanata/progbar/internal/animation"
	"github.com/ajanata/progbar/internal/bar"
)

type call struct {
	op         string
	x, y, w, h int16
}

type canvas struct {
	calls []call
	text  int
}

func (c *canvas) Size() (int16, int16) { return 128, 64 }

func (c *canvas) SetPixel(int16, int16, color.RGBA) { c.text++ }

func (c *canvas) Display() error { return nil }

func (c *canvas) Fill(color.RGBA) { c.calls = append(c.calls, call{op: "fill"}) }

func (c *canvas) FillRect(x, y, w, h int16, _ color.RGBA) error {
	c.calls = append(c.calls, call{"fillrect", x, y, w, h})
	return nil
}

func (c *canvas) Rect(x, y, w, h int16, _ color.RGBA) error {
	c.calls = append(c.calls, call{"rect", x, y, w, h})
	return nil
}

var _ animation.Animation = (*Anim)(nil)

func TestDrawFrame(t *testing.T) {
	b, err := bar.New(10, 35, 108, 10)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name  string
		opts  Options
		frame uint64
		want  []call
		text  bool
	}{
		{
			name:  "bare",
			frame: 37,
			want:  []call{{op: "fill"}, {"fillrect", 10, 35, 39, 10}},
		},
		{
			name:  "wraps",
			frame: 100,
			want:  []call{{op: "fill"}, {"fillrect", 10, 35, 0, 10}},
		},
		{
			name:  "outlined with cycles",
			opts:  Options{Outline: true, CyclesBaseline: 15},
			frame: 250,
			want:  []call{{op: "fill"}, {"rect", 10, 35, 108, 10}, {"fillrect", 10, 35, 54, 10}},
			text:  true,
		},
	}
	for _, tc := range cases {
		c := &canvas{}
		if err := New(b, tc.opts).DrawFrame(c, tc.frame); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(c.calls) != len(tc.want) {
			t.Fatalf("%s: calls\n  got  %+v\n  want %+v", tc.name, c.calls, tc.want)
		}
		for i := range tc.want {
			if c.calls[i] != tc.want[i] {
				t.Errorf("%s: call %d\n  got  %+v\n  want %+v", tc.name, i, c.calls[i], tc.want[i])
			}
		}
		if got := c.text > 0; got != tc.text {
			t.Errorf("%s: drew text = %v, want %v", tc.name, got, tc.text)
		}
	}
}
