package ethereum

import (
	"errors"

	"threatwatch/internal/retry"
)

var ErrNotConnected = errors.New("chain source not connected")

type Config struct {
	// MaxBlockRange caps the number of blocks returned by a single poll.
	MaxBlockRange uint64
	// FetchConcurrency bounds the parallel block downloads of a poll.
	FetchConcurrency int
	Retry            retry.Policy
}

func DefaultConfig() Config {
	return Config{
		MaxBlockRange:    20,
		FetchConcurrency: 4,
		Retry:            retry.DefaultPolicy(),
	}
}

const headBuffer = 16
