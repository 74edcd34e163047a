// Package loader fans plate queries out across every known finder and
// pushes whatever they dig up into the ingestion API.
package loader

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"huur-backend/lib/configutil"
	"huur-backend/lib/finders"
	"huur-backend/lib/finders/blinkay"
	"huur-backend/lib/finders/citationportal"
	"huur-backend/lib/finders/metropolis"
	"huur-backend/lib/finders/parkingcompliance"
	"huur-backend/lib/finders/rmcpay"
	"huur-backend/lib/finders/t2portal"
	"huur-backend/lib/finders/vanguard"
)

type Config struct {
	MaxThreads int `json:"max_threads"`
}

// ReadConfig loads the loader configuration from config.json5, letting
// the MAX_THREADS environment variable override the file. Absent both,
// searches run one at a time.
func ReadConfig() Config {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read config file", "err", err)
	}
	if env := os.Getenv("MAX_THREADS"); env != "" {
		threads, err := strconv.Atoi(env)
		if err != nil {
			slog.Warn("invalid MAX_THREADS value", "value", env)
		} else {
			config.MaxThreads = threads
		}
	}
	if config.MaxThreads < 1 {
		config.MaxThreads = 1
	}
	return config
}

// Sink receives normalized violations. Submission is best effort; the
// return only reports whether the record was accepted.
type Sink interface {
	CreateViolation(ctx context.Context, violation finders.ParkingViolation) bool
}

// Journal records submission attempts. Satisfied by violationstore.Store.
type Journal interface {
	Record(ctx context.Context, finder string, violation finders.ParkingViolation, submitted bool) error
}

// DefaultFinders returns every provider integration the loader knows.
func DefaultFinders() []finders.Finder {
	return []finders.Finder{
		blinkay.New(),
		t2portal.NewFortLauderdale(),
		t2portal.NewHouston(),
		citationportal.New(),
		parkingcompliance.New(),
		metropolis.New(),
		rmcpay.New(),
		vanguard.New(),
	}
}

type Loader struct {
	finders    []finders.Finder
	sink       Sink
	journal    Journal
	maxThreads int
}

type Options struct {
	// Finders defaults to DefaultFinders().
	Finders []finders.Finder
	Sink    Sink
	// Journal is optional.
	Journal Journal
	// MaxThreads caps concurrent finder invocations, not queries, so a
	// single slow portal can't hold an entire plate's fan-out hostage.
	MaxThreads int
}

func New(opts Options) *Loader {
	fs := opts.Finders
	if fs == nil {
		fs = DefaultFinders()
	}
	maxThreads := opts.MaxThreads
	if maxThreads < 1 {
		maxThreads = 1
	}
	return &Loader{
		finders:    fs,
		sink:       opts.Sink,
		journal:    opts.Journal,
		maxThreads: maxThreads,
	}
}

type Summary struct {
	Found     int
	Submitted int
	Errors    int
	Records   []finders.ParkingViolation
}

// Run searches every query against every finder and submits the results.
// A failing finder never aborts the batch: its error is logged and
// counted, and the rest of the fan-out keeps going.
func (l *Loader) Run(ctx context.Context, queries []finders.Query) Summary {
	slog.Info(
		"starting batch",
		"queries", len(queries),
		"finders", len(l.finders),
		"max_threads", l.maxThreads,
	)

	semaphore := make(chan struct{}, l.maxThreads)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var summary Summary

	for _, query := range queries {
		for _, finder := range l.finders {
			wg.Add(1)
			go func(finder finders.Finder, query finders.Query) {
				defer wg.Done()

				select {
				case semaphore <- struct{}{}:
				case <-ctx.Done():
					return
				}
				defer func() { <-semaphore }()

				found, err := finder.Find(ctx, query)
				if err != nil {
					findErr := &finders.FindError{
						Finder: finder.Name(),
						Plate:  query.Plate,
						State:  query.State,
						Err:    err,
					}
					slog.Error("finder failed", "err", findErr)
					mu.Lock()
					summary.Errors++
					mu.Unlock()
					return
				}
				if len(found) == 0 {
					return
				}

				submitted := 0
				for _, violation := range found {
					slog.Debug(
						"violation found",
						"finder", finder.Name(),
						"identifier", violation.Identifier(),
						"plate", violation.Tag,
						"state", violation.State,
						"amount", violation.Amount,
						"active", violation.IsActive,
					)
					ok := l.sink.CreateViolation(ctx, violation)
					if ok {
						submitted++
					}
					if l.journal != nil {
						jerr := l.journal.Record(ctx, finder.Name(), violation, ok)
						if jerr != nil {
							slog.Warn("failed to journal submission", "err", jerr)
						}
					}
				}
				slog.Info(
					"finder results submitted",
					"finder", finder.Name(),
					"plate", query.Plate,
					"found", len(found),
					"submitted", submitted,
				)

				mu.Lock()
				summary.Found += len(found)
				summary.Submitted += submitted
				summary.Records = append(summary.Records, found...)
				mu.Unlock()
			}(finder, query)
		}
	}
	wg.Wait()

	slog.Info(
		"batch finished",
		"found", summary.Found,
		"submitted", summary.Submitted,
		"errors", summary.Errors,
	)
	return summary
}
