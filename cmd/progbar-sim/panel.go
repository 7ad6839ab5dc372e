package main

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const (
	panelW = 128
	panelH = 64
)

// terminalPanel is a 128x64 monochrome panel drawn with half blocks, two pixel rows per terminal row.
type terminalPanel struct {
	screen tcell.Screen
	style  tcell.Style

	mu sync.Mutex
	px [panelW][panelH]bool
}

func newTerminalPanel(screen tcell.Screen) *terminalPanel {
	return &terminalPanel{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack),
	}
}

func (p *terminalPanel) Size() (x, y int16) {
	return panelW, panelH
}

func (p *terminalPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= panelW || y >= panelH {
		return
	}
	p.mu.Lock()
	p.px[x][y] = c.R != 0 || c.G != 0 || c.B != 0
	p.mu.Unlock()
}

// Pixel reports whether x, y is lit in the framebuffer.
func (p *terminalPanel) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= panelW || y >= panelH {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.px[x][y]
}

// Display is the bus transfer of a real panel: the whole buffer goes out at once.
func (p *terminalPanel) Display() error {
	p.mu.Lock()
	for x := 0; x < panelW; x++ {
		for row := 0; row < panelH/2; row++ {
			p.screen.SetContent(x, row, halfBlock(p.px[x][2*row], p.px[x][2*row+1]), nil, p.style)
		}
	}
	p.mu.Unlock()
	p.screen.Show()
	return nil
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
