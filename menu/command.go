package menu

import (
	"context"
	"log/slog"
	"time"
)

type Command struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// WithTiming wraps a command so its key, status and duration land in the
// session log. Stdout stays reserved for the interactive surface.
func WithTiming(log *slog.Logger, c Command) Command {
	return Command{
		Key:  c.Key,
		Name: c.Name,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := c.Run(ctx)
			dur := time.Since(start).Round(time.Millisecond)

			status := "OK"
			if err != nil {
				status = "ERR"
			}
			if log != nil {
				log.Info("command", "key", c.Key, "status", status, "duration", dur)
			}
			return err
		},
	}
}
