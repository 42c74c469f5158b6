package utils

import (
	"time"

	seahorse "github.com/mtnPay/seahorse-swap"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ seahorse.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx, next seahorse.Checker) (*seahorse.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx seahorse.Context, store seahorse.KVStore, tx seahorse.Tx, next seahorse.Deliverer) (*seahorse.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx seahorse.Context, tx seahorse.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := seahorse.GetLogger(ctx).With(
		"duration", delta/time.Microsecond,
		"path", seahorse.GetPath(tx),
	)

	if err != nil {
		logger.Error(msg, "err", err)
		return
	}
	// Message can be empty, the entry still carries the duration and path.
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
