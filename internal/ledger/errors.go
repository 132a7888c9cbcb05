package ledger

import (
	"errors"
	"fmt"
	"strings"

	"threatwatch/internal/retry"

	"github.com/ethereum/go-ethereum/rpc"
)

var (
	// ErrValidationRejected means the contract refused the report parameters. Resubmitting
	// the same alert unchanged cannot succeed.
	ErrValidationRejected = errors.New("report rejected by ledger")
	ErrTransient          = errors.New("transient ledger error")
)

// classify wraps err with ErrValidationRejected when the node reports a revert, and with
// ErrTransient otherwise.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrValidationRejected) || errors.Is(err, ErrTransient) {
		return err
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) || strings.Contains(strings.ToLower(err.Error()), "execution reverted") {
		return fmt.Errorf("%w: %w", ErrValidationRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

func retryClass(err error) retry.Class {
	if errors.Is(classify(err), ErrValidationRejected) {
		return retry.Permanent
	}
	return retry.Retriable
}
