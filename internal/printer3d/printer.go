// Package printer3d models a 3D printer as a typestate machine. Each state
// is its own type and only offers the transitions legal from that state:
//
//	Idle --StartPrint--> Printing --FinishPrint--> ProductReady
//	  ^                     |                          |
//	  |               CheckFilament                    |
//	  |                     v                          |
//	  +------Reset------ Failed                        |
//	  +-------------------RetrieveProduct--------------+
//
// Every transition consumes the receiver. Reusing a state value after it has
// been transitioned away from panics.
package printer3d

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FilamentSensor reports whether the printer has run out of filament.
type FilamentSensor func() bool

// RandomSensor runs out of filament on roughly one check in twenty.
func RandomSensor() bool {
	return rand.IntN(100) >= 95
}

// Stats counts the jobs a printer has seen through.
type Stats struct {
	Completed int
	Failed    int
}

// Option configures a printer built by New.
type Option func(*machine)

// WithLogger sets the logger for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(m *machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithFilamentSensor replaces RandomSensor.
func WithFilamentSensor(s FilamentSensor) Option {
	return func(m *machine) {
		if s != nil {
			m.sensor = s
		}
	}
}

// machine is shared by every state value of one printer. gen is bumped on
// each transition and a state is only live while its gen matches.
type machine struct {
	log    *zap.Logger
	sensor FilamentSensor
	gen    uint64
	job    uuid.UUID
	stats  Stats
}

type state struct {
	m   *machine
	gen uint64
}

func (s state) check(name string) *machine {
	if s.m == nil {
		panic(fmt.Sprintf("printer3d: use of a zero %s state", name))
	}
	if s.gen != s.m.gen {
		panic(fmt.Sprintf("printer3d: use of a stale %s state", name))
	}
	return s.m
}

func (s state) next(name string) state {
	m := s.check(name)
	m.gen++
	return state{m: m, gen: m.gen}
}

// Idle waits for a job.
type Idle struct{ s state }

// Printing is working on a job.
type Printing struct{ s state }

// Failed ran out of filament and needs a reset.
type Failed struct{ s state }

// ProductReady holds a finished print.
type ProductReady struct{ s state }

// New returns an idle printer.
func New(opts ...Option) Idle {
	m := &machine{log: zap.NewNop(), sensor: RandomSensor}
	for _, opt := range opts {
		opt(m)
	}
	m.log.Debug("printer created")
	return Idle{s: state{m: m}}
}

// StartPrint begins a new job with a fresh id.
func (p Idle) StartPrint() Printing {
	next := p.s.next("idle")
	next.m.job = uuid.New()
	next.m.log.Info("print job started", zap.Stringer("job", next.m.job))
	return Printing{s: next}
}

// Stats reports the jobs completed and failed so far.
func (p Idle) Stats() Stats {
	return p.s.check("idle").stats
}

// Job returns the id of the job being printed.
func (p Printing) Job() uuid.UUID {
	return p.s.check("printing").job
}

// CheckFilament asks the sensor for filament. With filament left it returns
// the printer still printing and ok = true; otherwise the Failed state and
// ok = false. Only the returned value selected by ok is usable.
func (p Printing) CheckFilament() (printing Printing, failed Failed, ok bool) {
	next := p.s.next("printing")
	if next.m.sensor() {
		next.m.stats.Failed++
		next.m.log.Warn("out of filament", zap.Stringer("job", next.m.job))
		return Printing{}, Failed{s: next}, false
	}
	return Printing{s: next}, Failed{}, true
}

// FinishPrint completes the job.
func (p Printing) FinishPrint() ProductReady {
	next := p.s.next("printing")
	next.m.log.Info("print job finished", zap.Stringer("job", next.m.job))
	return ProductReady{s: next}
}

// Reset clears the failure and abandons the job.
func (p Failed) Reset() Idle {
	next := p.s.next("failed")
	next.m.log.Info("printer reset", zap.Stringer("job", next.m.job))
	next.m.job = uuid.Nil
	return Idle{s: next}
}

// RetrieveProduct takes the print out of the printer.
func (p ProductReady) RetrieveProduct() Idle {
	next := p.s.next("product ready")
	next.m.stats.Completed++
	next.m.log.Info("product retrieved", zap.Stringer("job", next.m.job))
	next.m.job = uuid.Nil
	return Idle{s: next}
}

// RunJob drives one job from Idle back to Idle, resetting on a filament
// failure. It reports whether the job produced a product.
func RunJob(p Idle) (Idle, bool) {
	printing, failed, ok := p.StartPrint().CheckFilament()
	if !ok {
		return failed.Reset(), false
	}
	return printing.FinishPrint().RetrieveProduct(), true
}
