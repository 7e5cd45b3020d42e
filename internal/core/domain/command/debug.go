package command

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"runtime/metrics"

	"github.com/rs/zerolog/log"
)

type Debug struct {
	Base
}

func NewDebug() *Debug {
	return &Debug{}
}

const kb = 1024
const debugTemplate = "allocated mem: %d KB | goroutines: %d | heap: %d KB | stack: %d KB | %s %s-%s"
const metricCount = 3

// Stats replies with runtime statistics. Only the broadcaster and moderators may use it.
func (d *Debug) Stats(ctx context.Context) error {
	l := log.With().
		Str("channel", d.Channel().Name).
		Str("user", d.User().Name).
		Str("handler", "debug").
		Logger()

	if !d.User().IsPrivileged() {
		l.Debug().Msg("not privileged")
		return nil
	}

	data := make([]metrics.Sample, metricCount)
	data[0] = metrics.Sample{Name: "/memory/classes/heap/objects:bytes"}
	data[1] = metrics.Sample{Name: "/memory/classes/heap/stacks:bytes"}
	data[2] = metrics.Sample{Name: "/memory/classes/total:bytes"}

	metrics.Read(data)

	for _, sample := range data {
		l.Debug().Str("name", sample.Name).Msgf("%d", sample.Value.Uint64())
	}

	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	return d.Reply(ctx, fmt.Sprintf(
		debugTemplate,
		data[2].Value.Uint64()/kb,
		runtime.NumGoroutine(),
		data[0].Value.Uint64()/kb,
		data[1].Value.Uint64()/kb,
		runtime.Version(), goos, goarch,
	))
}
