package treasury

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFeePercentage matches every fee percentage outside 1..99.
	ErrInvalidFeePercentage = errors.New("Invalid fee percentage")

	// ErrInvalidTreasuryAddress is raised when a treasury address cannot be
	// parsed. NewTreasuryConfig never returns it.
	ErrInvalidTreasuryAddress = errors.New("Invalid treasury address")
)

// FeePercentageError carries the rejected fee percentage.
type FeePercentageError struct {
	Percentage uint8
}

func (e *FeePercentageError) Error() string {
	return fmt.Sprintf("Invalid fee percentage: %d", e.Percentage)
}

// Is lets errors.Is(err, ErrInvalidFeePercentage) match.
func (e *FeePercentageError) Is(target error) bool {
	return target == ErrInvalidFeePercentage
}
