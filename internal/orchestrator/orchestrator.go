// ABOUTME: Runs one seeding module or all of them in dependency order.
// ABOUTME: Tags every module error with its name and records each run in the history log.

package orchestrator

import (
	"context"
	"fmt"
	"log"
	"time"

	seederrors "github.com/2389/demoseed/internal/errors"
	"github.com/2389/demoseed/internal/narrative"
	"github.com/2389/demoseed/internal/rng"
	"github.com/2389/demoseed/internal/runlog"
	"github.com/2389/demoseed/internal/store"
	"github.com/2389/demoseed/modules/core"
)

// State is the lifecycle of a run. There is no failed state: a run that
// reaches the end is COMPLETED, and Success says whether it was clean.
type State string

const (
	Pending    State = "PENDING"
	InProgress State = "IN_PROGRESS"
	Completed  State = "COMPLETED"
)

// Report is the outcome of one run.
type Report struct {
	State    State          `json:"state"`
	Success  bool           `json:"success"`
	Module   string         `json:"module"`
	Inserted map[string]int `json:"inserted"`
	Errors   []string       `json:"errors"`
}

// Total is the number of rows inserted across all tables.
func (r Report) Total() int {
	n := 0
	for _, c := range r.Inserted {
		n += c
	}
	return n
}

// Config wires an Orchestrator.
type Config struct {
	Store     store.Store
	Rand      rng.Source
	BatchSize int
	Text      narrative.Source
	// Clock returns the reference time for a run. Defaults to time.Now.
	Clock func() time.Time
	// Runs receives one entry per run. Optional.
	Runs *runlog.Recorder
	// Modules lists the candidates. Defaults to every registered module.
	Modules func() []core.Module
}

// Orchestrator sequences module runs. Runs are sequential; a single
// Orchestrator must not be used for concurrent runs.
type Orchestrator struct {
	cfg    Config
	lookup func(name string) (core.Module, bool)
}

// New returns an orchestrator, filling in defaults.
func New(cfg Config) *Orchestrator {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	lookup := core.Get
	if cfg.Modules == nil {
		cfg.Modules = core.Modules
	} else {
		mods := cfg.Modules
		lookup = func(name string) (core.Module, bool) {
			for _, m := range mods() {
				if m.Name() == name {
					return m, true
				}
			}
			return nil, false
		}
	}
	if cfg.Text == nil {
		cfg.Text = narrative.Static()
	}
	if cfg.Rand == nil {
		cfg.Rand = rng.New(0)
	}
	return &Orchestrator{cfg: cfg, lookup: lookup}
}

// Names returns the accepted module names, including "all".
func (o *Orchestrator) Names() []string {
	mods := o.cfg.Modules()
	names := make([]string, 0, len(mods)+1)
	names = append(names, core.All)
	for _, m := range mods {
		names = append(names, m.Name())
	}
	return names
}

// Plan resolves name to the modules a run would execute, in order. An unknown
// name or a dependency cycle is an OrchestrationError.
func (o *Orchestrator) Plan(name string) ([]core.Module, error) {
	if name == core.All {
		return core.Order(o.cfg.Modules())
	}
	if m, ok := o.lookup(name); ok {
		return []core.Module{m}, nil
	}
	return nil, &seederrors.OrchestrationError{
		Module: name,
		Valid:  o.Names(),
		Reason: "unknown module",
	}
}

// Run seeds name, which is a module name or "all". Storage failures are
// collected into the report as "[module] message" and the run continues.
// An unknown name or a batch size below one is returned before any module
// runs. A ValidationError or OrchestrationError from a module stops the run;
// the partial report is recorded and the error returned.
func (o *Orchestrator) Run(ctx context.Context, name string) (Report, error) {
	rep := Report{State: Pending, Module: name, Inserted: map[string]int{}, Errors: []string{}}
	plan, err := o.Plan(name)
	if err != nil {
		return rep, err
	}
	if o.cfg.BatchSize <= 0 {
		return rep, seederrors.Invalid("batch_size", "must be positive, got %d", o.cfg.BatchSize)
	}

	started := time.Now()
	env := core.Env{
		Store:     o.cfg.Store,
		Rand:      o.cfg.Rand,
		Now:       o.cfg.Clock(),
		BatchSize: o.cfg.BatchSize,
		Text:      o.cfg.Text,
	}

	rep.State = InProgress
	var fatal error
	for _, m := range plan {
		if err := ctx.Err(); err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("[%s] not run: %v", m.Name(), err))
			continue
		}
		res, err := m.Seed(ctx, env)
		for table, n := range res.Inserted {
			rep.Inserted[table] += n
		}
		for _, e := range res.Errors {
			rep.Errors = append(rep.Errors, fmt.Sprintf("[%s] %s", m.Name(), e))
		}
		if err != nil {
			rep.Errors = append(rep.Errors, fmt.Sprintf("[%s] %v", m.Name(), err))
			if seederrors.IsValidation(err) || seederrors.IsOrchestration(err) {
				log.Printf("Stopping after %s: %v", m.Name(), err)
				fatal = err
				break
			}
		}
		log.Printf("Seeded %s: %s", m.Name(), res.Summary())
	}
	rep.State = Completed
	rep.Success = len(rep.Errors) == 0

	o.cfg.Runs.Record(context.WithoutCancel(ctx), runlog.Entry{
		Module:   name,
		State:    string(rep.State),
		Success:  rep.Success,
		Inserted: rep.Inserted,
		Errors:   rep.Errors,
		Started:  started,
		Elapsed:  time.Since(started),
	})
	return rep, fatal
}
