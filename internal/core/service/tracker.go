package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Tracker interface {
	Record(key string)
	Count(key string) int
}

// UsageTracker counts successful command invocations per key for the current day.
type UsageTracker struct {
	commands map[string]int
	mutex    *sync.Mutex
}

func NewUsageTracker(ctx context.Context) *UsageTracker {
	ut := &UsageTracker{
		commands: make(map[string]int),
		mutex:    &sync.Mutex{},
	}

	go ut.ResetDaily(ctx)

	return ut
}

func (t *UsageTracker) Record(key string) {
	t.mutex.Lock()
	t.commands[key]++
	t.mutex.Unlock()
}

func (t *UsageTracker) Count(key string) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.commands[key]
}

func (t *UsageTracker) reset() {
	t.mutex.Lock()
	t.commands = make(map[string]int)
	t.mutex.Unlock()
}

func (t *UsageTracker) ResetDaily(ctx context.Context) {
	reset := getNextResetTime()

	for {
		log.Debug().Time("reset", reset).Msg("running reset timer")
		select {
		case <-time.After(time.Until(reset)):
			log.Debug().Msg("resetting usage counters")
			t.reset()
			time.Sleep(time.Second)
			reset = getNextResetTime()
		case <-ctx.Done():
			log.Debug().Msg("stopping usage counter reset")
			return
		}
	}
}

func getNextResetTime() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}
