// Package util provides logging and randomness helpers shared by the
// examples and tests.
package util

import (
	"fmt"
	"log"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger prints throttled percentage updates for a long loop.
type ProgressLogger struct {
	totalEvents    uint64
	prefix         string
	suffix         string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
	lastUpdate     time.Time
}

// NewProgressLogger creates a progress logger over totalEvents events.
// Updates print every 5%, or every 1% for very large counts.
func NewProgressLogger(totalEvents uint64, prefix, suffix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		totalEvents: totalEvents,
		prefix:      prefix,
		suffix:      suffix,
		enabled:     enable,
		startTime:   time.Now(),
	}

	steps := uint64(20)
	if totalEvents >= 100_000_000 {
		steps = 100
	}
	pl.logStep = (totalEvents + steps - 1) / steps
	if pl.logStep == 0 {
		pl.logStep = 1
	}

	if enable {
		pl.nextEventToLog = pl.logStep
		pl.update(false)
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log records one event and prints progress if a step boundary was crossed.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Finalize prints the 100% line with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents = pl.totalEvents
	pl.update(true)
}

func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = (100 * pl.loggedEvents) / pl.totalEvents
	}
	if final {
		fmt.Printf("\r%s%d%%%s (%.2fs)\n", pl.prefix, perc, pl.suffix, time.Since(pl.startTime).Seconds())
		return
	}
	now := time.Now()
	if now.Sub(pl.lastUpdate) > 100*time.Millisecond {
		fmt.Printf("\r%s%d%%%s", pl.prefix, perc, pl.suffix)
		pl.lastUpdate = now
	}
}
