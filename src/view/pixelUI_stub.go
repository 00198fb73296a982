//go:build !ebiten

package view

//PixelUI is a placeholder that satisfies the API expected by the GUI build
type PixelUI struct{}

//NewPixelUI panics to indicate that the ebiten build tag is required for GUI support
func NewPixelUI(int) *PixelUI {
	panic("view.NewPixelUI requires building with the 'ebiten' tag")
}

func (p *PixelUI) Register(*Runner) {}

func (p *PixelUI) Refresh() {}

func (p *PixelUI) Start() {}
