package view

import (
	"math/rand"
	"sync"
	"time"

	"gridlife/src/grid"
	"gridlife/src/world"
)

//Options represents the runner's configurable options
type Options struct {
	Width    int
	Height   int
	Interval time.Duration
	MaxSteps int
	Toroidal bool
}

//Status represents the simulation status at a concrete moment
type Status struct {
	Iteration int
	LiveCells int
	StepTime  time.Duration
	Running   bool
	Finished  bool
}

//Viewer is the interface to any viewer - the object who can display simulation data or control the runner
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start()
}

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 40
	DefHeight             = 15
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//Runner owns a world.World and drives it on behalf of the viewers.
//The world itself is synchronous; all pacing, stop conditions and
//locking live here.
type Runner struct {
	mu      sync.Mutex
	w       *world.World
	prev    *grid.Grid
	options Options

	iteration int
	stepTime  time.Duration
	running   bool
	finished  bool

	stopCh chan struct{}
	done   chan struct{}
	views  []Viewer
}

//NewRunner creates a Runner over a fresh world. When seed is not nil
//its contents and dimensions are adopted; otherwise an empty world of
//the configured size is created.
func NewRunner(o Options, seed *grid.Grid) *Runner {
	var w *world.World
	if seed != nil {
		w = world.FromGrid(seed)
		o.Width, o.Height = seed.Width(), seed.Height()
	} else {
		w = world.New(o.Width, o.Height)
	}
	return &Runner{
		w:       w,
		prev:    grid.New(o.Width, o.Height),
		options: o,
		done:    make(chan struct{}),
	}
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//Options returns the runner configuration
func (r *Runner) Options() Options { return r.options }

//Status returns the simulation status
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Iteration: r.iteration,
		LiveCells: r.w.AliveCells(),
		StepTime:  r.stepTime,
		Running:   r.running,
		Finished:  r.finished,
	}
}

//Snapshot returns a copy of the current generation, safe to use while
//the runner keeps stepping.
func (r *Runner) Snapshot() *grid.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.w.State()
	g, _ := st.Crop(0, 0, st.Width(), st.Height())
	return g
}

//Done returns a channel closed when the simulation finishes (max
//steps reached, extinction, or a still state). Clear, RandomFill and
//a reviving Toggle replace the channel, so re-read it after a reset.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

//Step does one simulation step
func (r *Runner) Step() {
	r.mu.Lock()
	r.step()
	r.mu.Unlock()
	r.refreshViews()
}

func (r *Runner) step() {
	if r.finished {
		return
	}
	start := time.Now()
	copy(r.prev.Cells(), r.w.State().Cells())
	r.w.Step(r.options.Toroidal)
	r.stepTime = time.Since(start)
	r.iteration++
	if r.options.MaxSteps != 0 && r.iteration >= r.options.MaxSteps {
		r.finish()
		return
	}
	//extinct or still - nothing will ever change again
	if r.w.AliveCells() == 0 || r.w.State().Equal(r.prev) {
		r.finish()
	}
}

//finish is only reachable from step, which early-returns while
//finished, so the done channel is closed at most once per lifecycle
func (r *Runner) finish() {
	r.finished = true
	r.running = false
	close(r.done)
}

//Run starts the paced simulation loop, returns immediately
func (r *Runner) Run() {
	r.mu.Lock()
	if r.running || r.finished {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stop, done := r.stopCh, r.done
	r.mu.Unlock()
	r.refreshViews()

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-done:
				return
			default:
			}
			r.Step()
			if r.options.Interval > 0 {
				time.Sleep(r.options.Interval)
			}
		}
	}()
}

//Stop stops the running loop, returns immediately
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopLocked()
	r.mu.Unlock()
	r.refreshViews()
}

func (r *Runner) stopLocked() {
	if r.running {
		r.running = false
		close(r.stopCh)
	}
}

//Clear kills all cells and resets all counters
func (r *Runner) Clear() {
	r.mu.Lock()
	r.stopLocked()
	r.replaceWorld(world.New(r.options.Width, r.options.Height))
	r.mu.Unlock()
	r.refreshViews()
}

//RandomFill repopulates the world with a random pattern and resets all counters
func (r *Runner) RandomFill() {
	r.mu.Lock()
	r.stopLocked()
	g := grid.New(r.options.Width, r.options.Height)
	cells := g.Cells()
	for i := range cells {
		cells[i] = grid.Cell(rand.Intn(2))
	}
	r.replaceWorld(world.FromGrid(g))
	r.mu.Unlock()
	r.refreshViews()
}

//Toggle inverts the cell state at point x, y; out of range clicks are ignored
func (r *Runner) Toggle(x, y int) {
	r.mu.Lock()
	c, err := r.w.State().Get(x, y)
	if err != nil {
		r.mu.Unlock()
		return
	}
	next := grid.Alive
	if c == grid.Alive {
		next = grid.Dead
	}
	_ = r.w.SetCell(x, y, next)
	if r.finished {
		//the edit revives a finished simulation
		r.finished = false
		r.done = make(chan struct{})
	}
	r.mu.Unlock()
	r.refreshViews()
}

//replaceWorld swaps in a fresh world, must be called under the lock
func (r *Runner) replaceWorld(w *world.World) {
	r.w = w
	r.prev = grid.New(w.Width(), w.Height())
	r.iteration = 0
	r.stepTime = 0
	r.finished = false
	r.done = make(chan struct{})
}

//refreshViews calls Refresh for all registered viewers
func (r *Runner) refreshViews() {
	for _, v := range r.views {
		v.Refresh()
	}
}
