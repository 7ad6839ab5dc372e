package static

import (
	"image"

	"github.com/ajanata/progbar/internal/animation"
	"github.com/ajanata/progbar/internal/media"
)

// Anim shows a still image centered on a blank canvas.
type Anim struct {
	img image.Image
}

func New(typ media.Type, file string) (*Anim, error) {
	img, err := media.LoadImage(typ, file)
	if err != nil {
		return nil, err
	}

	return &Anim{
		img: img,
	}, nil
}

func (a *Anim) Activate(c animation.Canvas) error {
	c.Fill(animation.Off)
	w, h := c.Size()
	b := a.img.Bounds()
	animation.DrawImage(c, (w-int16(b.Dx()))/2, (h-int16(b.Dy()))/2, a.img)
	return nil
}

func (a *Anim) DrawFrame(animation.Canvas, uint64) error { return nil }
