package tracker

import (
	"sync/atomic"
	"time"

	"github.com/gen2brain/beeep"
)

// Alerter rings the terminal bell repeatedly until acknowledged. The
// background goroutine only reads the flag; all state changes happen
// on the UI goroutine via Start and Stop.
type Alerter struct {
	ringing atomic.Bool
}

// Start begins ringing once per second. A second Start while already
// ringing is a no-op.
func (a *Alerter) Start() {
	if a.ringing.Swap(true) {
		return
	}

	go func() {
		for a.ringing.Load() {
			_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
			time.Sleep(time.Second)
		}
	}()
}

// Stop silences the alert.
func (a *Alerter) Stop() {
	a.ringing.Store(false)
}

// Ringing reports whether the alert is active.
func (a *Alerter) Ringing() bool {
	return a.ringing.Load()
}
