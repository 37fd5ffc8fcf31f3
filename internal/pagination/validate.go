package pagination

import (
	"errors"
	"fmt"

	apperrors "github.com/alexisbeaulieu97/showroom/pkg/errors"
)

var (
	// ErrInvalidTotal is returned when totalPages is less than one.
	ErrInvalidTotal = errors.New("total pages must be at least 1")
	// ErrPageOutOfRange is returned when a page lies outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrNegativeOption is returned when a sibling or boundary count is negative.
	ErrNegativeOption = errors.New("option must not be negative")
	// ErrNotSelectable is returned when an ellipsis item is selected.
	ErrNotSelectable = errors.New("ellipsis items are not selectable")
)

// Validate checks the (currentPage, totalPages) precondition shared by every generator.
// Out-of-range input is rejected rather than clamped.
func Validate(current, total int) error {
	if total < 1 {
		return apperrors.NewValidationError("totalPages", fmt.Sprintf("got %d, want >= 1", total), ErrInvalidTotal)
	}
	return validatePage("currentPage", current, total)
}

func validatePage(field string, page, total int) error {
	if page < 1 || page > total {
		return apperrors.NewValidationError(field, fmt.Sprintf("got %d, want 1..%d", page, total), ErrPageOutOfRange)
	}
	return nil
}

func validateCount(field string, value int) error {
	if value < 0 {
		return apperrors.NewValidationError(field, fmt.Sprintf("got %d, want >= 0", value), ErrNegativeOption)
	}
	return nil
}
