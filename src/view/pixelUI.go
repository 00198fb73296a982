//go:build ebiten

package view

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridlife/src/grid"
)

//PixelUI renders the world as scaled pixels in an ebiten window
type PixelUI struct {
	r     *Runner
	scale int
	w, h  int
	img   *ebiten.Image
	buf   []byte
}

func NewPixelUI(scale int) *PixelUI {
	if scale < 1 {
		scale = 1
	}
	return &PixelUI{scale: scale}
}

func (p *PixelUI) Register(r *Runner) {
	p.r = r
	o := r.Options()
	p.w, p.h = o.Width, o.Height
	if p.w < 1 {
		p.w = 1
	}
	if p.h < 1 {
		p.h = 1
	}
	p.img = ebiten.NewImage(p.w, p.h)
	p.buf = make([]byte, 4*p.w*p.h)
}

//Refresh is a no-op: ebiten redraws the whole frame on its own clock
func (p *PixelUI) Refresh() {}

func (p *PixelUI) Start() {
	ebiten.SetWindowTitle("gridlife")
	ebiten.SetWindowSize(p.w*p.scale, p.h*p.scale)
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func (p *PixelUI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if p.r.Status().Running {
			p.r.Stop()
		} else {
			p.r.Run()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.r.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.r.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		p.r.RandomFill()
	}
	return nil
}

func (p *PixelUI) Draw(screen *ebiten.Image) {
	cells := p.r.Snapshot().Cells()
	if len(cells) != p.w*p.h {
		return
	}
	for i, c := range cells {
		base := i * 4
		v := byte(0)
		if c == grid.Alive {
			v = 0xff
		}
		p.buf[base+0] = v
		p.buf[base+1] = v
		p.buf[base+2] = v
		p.buf[base+3] = 0xff
	}
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	screen.DrawImage(p.img, op)
}

func (p *PixelUI) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.w * p.scale, p.h * p.scale
}
