package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
)

// readyDelay is the base back-off between pings.
var readyDelay = 500 * time.Millisecond

// WaitReady pings the database until it answers or attempts run out.
// A MySQL container started alongside the server is usually not accepting
// connections yet when the server boots.
func WaitReady(ctx context.Context, db *sqlx.DB, attempts uint) error {
	if attempts == 0 {
		attempts = 1
	}
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(readyDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("database not ready", "attempt", n+1, "error", err)
		}),
	); err != nil {
		return fmt.Errorf("database not ready after %d attempts: %w", attempts, err)
	}
	return nil
}
