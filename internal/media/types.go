package media

type Type string

const (
	TypeSplash Type = "splash"
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeSplash:
		return 64, 32
	default:
		return 0, 0
	}
}
