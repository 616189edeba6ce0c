// Package harness runs functional and load cases against the ownership
// handles and the lists built on them, and collects their results.
package harness

import (
	"fmt"
	"time"

	"github.com/conn-castle/ownerbench/internal/messages"
)

// ProgressFunc receives load progress as done out of total elements.
type ProgressFunc func(done, total int)

// Case is a single functional check or load run.
type Case struct {
	Name string
	Kind Kind
	// Size is the element count of a load case.
	Size int
	Run  func(e *Exec) error
}

// Suite groups the cases for one handle family.
type Suite struct {
	Name  string
	Title string
	Cases []Case
}

// Exec is handed to a running case. It carries the requested size, reports
// progress, and owns the case timer.
type Exec struct {
	size     int
	progress ProgressFunc
	step     int
	now      func() time.Time
	start    time.Time
	elapsed  time.Duration
	stopped  bool
	result   int
}

// Size returns the number of elements a load case should create.
func (e *Exec) Size() int {
	return e.size
}

// Tick reports that done elements exist. Progress is forwarded once per
// percent and on completion.
func (e *Exec) Tick(done int) {
	if e.progress == nil {
		return
	}
	if done%e.step == 0 || done == e.size {
		e.progress(done, e.size)
	}
}

// StopTimer ends the timed section; work after it, such as teardown, is not
// measured. Only the first call counts.
func (e *Exec) StopTimer() {
	if e.stopped {
		return
	}
	e.elapsed = e.now().Sub(e.start)
	e.stopped = true
}

// SetResultSize records a size to report alongside the timing.
func (e *Exec) SetResultSize(n int) {
	e.result = n
}

// Runner executes suites.
type Runner struct {
	// Progress, when set, receives load progress.
	Progress ProgressFunc
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// RunSuite runs every case of s in order.
func (r *Runner) RunSuite(s Suite) []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, r.RunCase(s.Name, c))
	}
	return results
}

// RunCase runs c, turning a returned error or a panic into a failed result.
func (r *Runner) RunCase(suite string, c Case) (res Result) {
	now := r.Now
	if now == nil {
		now = time.Now
	}
	res = Result{Suite: suite, Case: c.Name, Kind: c.Kind}
	if c.Run == nil {
		res.Status = StatusSkip
		res.Message = messages.HarnessNoRunFunc
		return res
	}

	e := &Exec{size: c.Size, now: now, step: max(c.Size/100, 1)}
	if c.Kind == KindLoad {
		e.progress = r.Progress
	}

	defer func() {
		if rec := recover(); rec != nil {
			res.Status = StatusFail
			res.Message = fmt.Sprintf(messages.HarnessPanicFmt, rec)
			res.Duration = 0
			res.Size = 0
		}
	}()

	e.start = now()
	err := c.Run(e)
	e.StopTimer()

	if err != nil {
		res.Status = StatusFail
		res.Message = err.Error()
		return res
	}
	res.Status = StatusOK
	if c.Kind == KindLoad {
		res.Duration = e.elapsed
		res.Size = e.result
	}
	return res
}
