package sqlite

import (
	"errors"

	"babytracker/internal/domain"
)

func isStorage(err error) bool { return errors.Is(err, domain.ErrStorage) }
