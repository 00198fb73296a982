package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gridlife/src/grid"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer built on gocui
type ConsoleUI struct {
	r *Runner
	g *gocui.Gui
	k []keyBindings

	liveFiller string
	deadFiller string
}

var (
	modeWaiting  = aurora.Colorize("waiting", aurora.BlueFg).String()
	modeRunning  = aurora.Colorize("running", aurora.CyanFg).String()
	modeFinished = aurora.Colorize("finished", aurora.RedFg).String()
)

func modeDescr(st Status) string {
	switch {
	case st.Finished:
		return modeFinished
	case st.Running:
		return modeRunning
	default:
		return modeWaiting
	}
}

func NewConsoleUI() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextStep,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdRandomFill,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(r *Runner) {
	t.r = r
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.r.Snapshot())
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField(a *grid.Grid) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if a.Width() > maxW || a.Height() > maxH {
			crop = true
		}

		var b bytes.Buffer

		cells := a.Cells()
		for y := 0; y < a.Height(); y++ {
			//discard the data outside the view area
			if y >= maxH {
				break
			}
			//line feed char
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < a.Width(); x++ {
				if x >= maxW {
					break
				}
				if cells[y*a.Width()+x] == grid.Alive {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.r.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.Iteration))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", modeDescr(s)))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.r.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			_, _ = fmt.Fprintln(v, t.renderProp("Toroidal", "%v", c.Toroidal))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField(t.r.Snapshot())
	} else {
		t.renderField(t.r.Snapshot())
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.r.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.r.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.r.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.r.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomFill(_ *gocui.View) error {
	t.r.RandomFill()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.r.Toggle(cx, cy)
	return nil
}
