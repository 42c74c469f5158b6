package sigs

import "github.com/mtnPay/seahorse-swap/errors"

// ErrInvalidSequence is returned when a signature sequence does not match
// the expected value.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
