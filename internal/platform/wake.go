package platform

import (
	"sync"
	"time"
)

const (
	defaultSampleInterval = 2 * time.Second
	defaultGapThreshold   = 5 * time.Second
)

// WakeWatcher detects gaps in wall-clock time caused by system suspend or
// process freezing and reports the seconds that went unobserved, so the
// countdown can be corrected after resume.
type WakeWatcher struct {
	sampleInterval time.Duration
	gapThreshold   time.Duration
	onGap          func(missedSeconds int)
	stopCh         chan struct{}
	stopOnce       sync.Once
}

// NewWakeWatcher creates a watcher delivering missed seconds to onGap.
func NewWakeWatcher(onGap func(missedSeconds int)) *WakeWatcher {
	return &WakeWatcher{
		sampleInterval: defaultSampleInterval,
		gapThreshold:   defaultGapThreshold,
		onGap:          onGap,
		stopCh:         make(chan struct{}),
	}
}

// Start launches the sampling loop.
func (watcher *WakeWatcher) Start() {
	go watcher.run()
}

// Stop terminates the sampling loop.
func (watcher *WakeWatcher) Stop() {
	watcher.stopOnce.Do(func() {
		close(watcher.stopCh)
	})
}

func (watcher *WakeWatcher) run() {
	ticker := time.NewTicker(watcher.sampleInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-watcher.stopCh:
			return
		case now := <-ticker.C:
			gap := now.Sub(last) - watcher.sampleInterval
			last = now
			if gap >= watcher.gapThreshold && watcher.onGap != nil {
				watcher.onGap(int(gap.Seconds()))
			}
		}
	}
}
