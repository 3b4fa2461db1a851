package retry

import (
	"fmt"
	"time"

	"github.com/skycruzer/fleet-management-v2-sub013/internal/logging"
)

const (
	DefaultAttempts = 5
	DefaultDelay    = 5 * time.Second
)

// Times calls f until it succeeds or attempts run out, sleeping delay between
// failed calls. The last error is returned.
func Times(attempts int, delay time.Duration, f func() error, msg string) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = f()
		if err == nil {
			return nil
		}

		logging.Logger.Warnf("%s: %v (attempt %d/%d)", msg, err, i+1, attempts)
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}

	return fmt.Errorf("%s: giving up after %d attempts: %w", msg, attempts, err)
}

// FiveTimes is Times with the default schedule. It panics when every attempt
// fails, so it belongs at process startup only.
func FiveTimes(f func() error, msg string) {
	err := Times(DefaultAttempts, DefaultDelay, f, msg)
	if err != nil {
		panic(err)
	}
}
