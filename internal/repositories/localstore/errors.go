package localstore

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
)

func errDuplicateID(id string) error {
	return fmt.Errorf("%w: element with ID %s already exists", apperrors.ErrDuplicate, id)
}
