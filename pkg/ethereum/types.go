package ethereum

import (
	"errors"
)

var (
	// ErrUnsupportedNetwork is returned for a chain id with no configured RPC endpoint
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrChainIDMismatch is returned when an RPC endpoint serves a different chain than configured
	ErrChainIDMismatch = errors.New("chain id mismatch")
)
