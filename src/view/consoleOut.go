package view

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut is the plain stream viewer: prints the configuration on
//registration and progress/summary lines while the runner steps
type ConsoleOut struct {
	r         *Runner
	out       io.Writer
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{out: os.Stdout}
}

func (c *ConsoleOut) Register(r *Runner) {
	c.r = r
	o := r.Options()
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintf(c.out, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.out, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.out, "  Max iterations: %v steps\n", o.MaxSteps)
	fmt.Fprintf(c.out, "  Toroidal: %v\n", o.Toroidal)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")
}

func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	if st.Finished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Fprintf(c.out, "\n%v\n", aurora.Green("Finished:"))
		fmt.Fprintf(c.out, "  Last iteration: %v\n", st.Iteration)
		fmt.Fprintf(c.out, "  Live cells: %v\n", st.LiveCells)
		fmt.Fprintf(c.out, "  Total time: %v\n", totalTime)
	} else if st.Running && st.Iteration > 0 && st.Iteration%10 == 0 {
		fmt.Fprintf(c.out, "  Iterations done: %v\n", st.Iteration)
	}
}
