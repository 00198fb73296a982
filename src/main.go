package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/integrii/flaggy"

	"gridlife/src/grid"
	"gridlife/src/view"
	"gridlife/src/zoo"
)

var patterns = map[string]func() *grid.Grid{
	"glider":      zoo.Glider,
	"r-pentomino": zoo.RPentomino,
	"lwss":        zoo.LightWeightSpaceship,
}

type EnvOptions struct {
	interactive bool
	graphical   bool
	randomData  bool
	pattern     string
	loadPath    string
	savePath    string
	scale       int
}

func main() {
	eo, ro := initOptions()

	seed, err := initialGrid(eo, ro)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := view.NewRunner(*ro, seed)
	if eo.randomData {
		r.RandomFill()
	}

	switch {
	case eo.graphical:
		v := view.NewPixelUI(eo.scale)
		r.RegisterViewer(v)
		v.Start()
	case eo.interactive:
		v := view.NewConsoleUI()
		r.RegisterViewer(v)
		v.Start()
		r.Stop()
	default:
		v := view.NewConsoleOut()
		r.RegisterViewer(v)
		v.Start()
		r.Run()
		<-r.Done()
		fmt.Print(r.Snapshot())
	}

	if eo.savePath != "" {
		if err := saveGrid(eo.savePath, r.Snapshot()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

//initialGrid builds the starting field from a file or a preset creature.
//A seed smaller than the configured field is merged at its centre.
func initialGrid(eo *EnvOptions, ro *view.Options) (*grid.Grid, error) {
	var seed *grid.Grid
	switch {
	case eo.loadPath != "":
		var err error
		seed, err = loadGrid(eo.loadPath)
		if err != nil {
			return nil, err
		}
	case eo.pattern != "":
		seed = patterns[eo.pattern]()
	default:
		return nil, nil
	}

	if seed.Width() <= ro.Width && seed.Height() <= ro.Height {
		field := grid.New(ro.Width, ro.Height)
		_ = field.Merge(seed, (ro.Width-seed.Width())/2, (ro.Height-seed.Height())/2, false)
		return field, nil
	}
	return seed, nil
}

func loadGrid(path string) (*grid.Grid, error) {
	if strings.HasSuffix(path, ".bgol") {
		return zoo.LoadBinary(path)
	}
	return zoo.LoadASCII(path)
}

func saveGrid(path string, g *grid.Grid) error {
	if strings.HasSuffix(path, ".bgol") {
		return zoo.SaveBinary(path, g)
	}
	return zoo.SaveASCII(path, g)
}

func initOptions() (eo *EnvOptions, ro *view.Options) {

	o := view.DefaultOptions
	ro = &o
	patternNames := make([]string, 0, len(patterns))
	for k := range patterns {
		patternNames = append(patternNames, k)
	}
	sort.Strings(patternNames)
	eo = &EnvOptions{scale: 8}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&ro.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&ro.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&ro.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&ro.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&ro.Toroidal, "t", "toroidal", "Wrap the field edges around (toroidal topology)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.graphical, "g", "graphical", "Start graphical mode (requires a build with the 'ebiten' tag)")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.pattern, "p", "pattern", "Settle with a preset creature ["+strings.Join(patternNames, "|")+"]")
	flaggy.String(&eo.loadPath, "l", "load", "Load the initial field from a .gol (ascii) or .bgol (binary) file")
	flaggy.String(&eo.savePath, "o", "save", "Save the final field to a .gol (ascii) or .bgol (binary) file")
	flaggy.Int(&eo.scale, "", "scale", "Pixel scale for graphical mode")

	flaggy.Parse()

	if eo.pattern != "" {
		if _, ok := patterns[eo.pattern]; !ok {
			flaggy.ShowHelpAndExit("unknown pattern")
		}
	}

	return
}
