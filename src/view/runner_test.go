package view

import (
	"testing"
	"time"

	"gridlife/src/grid"
	"gridlife/src/zoo"
)

type countingViewer struct {
	r        *Runner
	refreshs int
}

func (v *countingViewer) Refresh() { v.refreshs++ }

func (v *countingViewer) Register(r *Runner) { v.r = r }

func (v *countingViewer) Start() {}

func newTestOptions() Options {
	o := DefaultOptions
	o.Interval = 0
	o.MaxSteps = 0
	return o
}

func TestRunnerAdoptsSeedDimensions(t *testing.T) {
	r := NewRunner(newTestOptions(), zoo.Glider())
	if o := r.Options(); o.Width != 3 || o.Height != 3 {
		t.Fatalf("options = %dx%d, expected 3x3", o.Width, o.Height)
	}
	if !r.Snapshot().Equal(zoo.Glider()) {
		t.Fatal("seed was not adopted")
	}
}

func TestRunnerStepUpdatesStatus(t *testing.T) {
	field := grid.NewSquare(8)
	_ = field.Merge(zoo.Glider(), 1, 1, false)
	r := NewRunner(newTestOptions(), field)
	v := &countingViewer{}
	r.RegisterViewer(v)

	r.Step()
	st := r.Status()
	if st.Iteration != 1 || st.Finished {
		t.Fatalf("status = %+v, expected iteration 1, not finished", st)
	}
	if st.LiveCells != 5 {
		t.Fatalf("live cells = %d, expected 5", st.LiveCells)
	}
	if v.refreshs == 0 {
		t.Fatal("viewer was not refreshed")
	}
}

func TestRunnerFinishesOnExtinction(t *testing.T) {
	seed := grid.NewSquare(3)
	_ = seed.Set(1, 1, grid.Alive)
	r := NewRunner(newTestOptions(), seed)

	r.Step()
	st := r.Status()
	if !st.Finished || st.LiveCells != 0 {
		t.Fatalf("status = %+v, expected finished with 0 live cells", st)
	}
	select {
	case <-r.Done():
	default:
		t.Fatal("Done channel is not closed")
	}
	// further steps are no-ops once finished
	r.Step()
	if r.Status().Iteration != 1 {
		t.Fatal("step after finish advanced the iteration counter")
	}
}

func TestRunnerFinishesOnStillLife(t *testing.T) {
	seed := grid.NewSquare(4)
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		_ = seed.Set(p[0], p[1], grid.Alive)
	}
	r := NewRunner(newTestOptions(), seed)
	r.Step()
	if !r.Status().Finished {
		t.Fatal("a still life did not finish the simulation")
	}
}

func TestRunnerRunStopsAtMaxSteps(t *testing.T) {
	o := newTestOptions()
	o.Toroidal = true
	o.MaxSteps = 3
	field := grid.NewSquare(8)
	_ = field.Merge(zoo.Glider(), 1, 1, false)
	r := NewRunner(o, field)

	r.Run()
	select {
	case <-r.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run did not finish")
	}
	if st := r.Status(); st.Iteration != 3 || !st.Finished {
		t.Fatalf("status = %+v, expected finished at iteration 3", st)
	}
}

func TestRunnerClearResets(t *testing.T) {
	r := NewRunner(newTestOptions(), zoo.RPentomino())
	r.Step()
	r.Clear()
	st := r.Status()
	if st.Iteration != 0 || st.LiveCells != 0 || st.Finished {
		t.Fatalf("status after clear = %+v", st)
	}
}

func TestRunnerToggle(t *testing.T) {
	o := newTestOptions()
	r := NewRunner(o, nil)
	before := r.w
	r.Toggle(2, 3)
	if c, _ := r.Snapshot().Get(2, 3); c != grid.Alive {
		t.Fatal("toggle did not settle the cell")
	}
	if r.w != before {
		t.Fatal("toggle replaced the world instead of editing it")
	}
	r.Toggle(2, 3)
	if c, _ := r.Snapshot().Get(2, 3); c != grid.Dead {
		t.Fatal("toggle did not kill the cell")
	}
	// clicks outside the field are ignored
	r.Toggle(-1, 99)
	if r.Snapshot().AliveCells() != 0 {
		t.Fatal("out of range toggle mutated the field")
	}
}

func TestRunnerRunsAgainAfterClear(t *testing.T) {
	seed := grid.NewSquare(3)
	_ = seed.Set(1, 1, grid.Alive)
	r := NewRunner(newTestOptions(), seed)

	r.Step() // extinction finishes the run
	if !r.Status().Finished {
		t.Fatal("extinction did not finish the simulation")
	}
	select {
	case <-r.Done():
	default:
		t.Fatal("Done channel is not closed after the first run")
	}

	r.Clear()
	select {
	case <-r.Done():
		t.Fatal("Clear did not replace the closed Done channel")
	default:
	}

	r.Toggle(1, 1)
	r.Run()
	select {
	case <-r.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("run after clear never stepped")
	}
	st := r.Status()
	if st.Iteration != 1 || !st.Finished || st.Running {
		t.Fatalf("status = %+v, expected finished at iteration 1", st)
	}
}

func TestRunnerToggleRevivesFinishedRun(t *testing.T) {
	seed := grid.NewSquare(3)
	_ = seed.Set(1, 1, grid.Alive)
	r := NewRunner(newTestOptions(), seed)

	r.Step() // extinction finishes the run
	r.Toggle(0, 0)
	if r.Status().Finished {
		t.Fatal("toggle did not revive the finished simulation")
	}
	select {
	case <-r.Done():
		t.Fatal("Done channel is still closed after the reviving toggle")
	default:
	}

	r.Step() // the lonely revived cell dies again
	st := r.Status()
	if st.Iteration != 2 || !st.Finished {
		t.Fatalf("status = %+v, expected finished at iteration 2", st)
	}
	select {
	case <-r.Done():
	default:
		t.Fatal("Done channel is not closed after the second finish")
	}
}

func TestRunnerRandomFill(t *testing.T) {
	r := NewRunner(newTestOptions(), nil)
	r.RandomFill()
	alive := r.Status().LiveCells
	if alive == 0 || alive == r.Options().Width*r.Options().Height {
		t.Fatalf("random fill produced a degenerate field with %d live cells", alive)
	}
}
