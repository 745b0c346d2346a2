package memory

import (
	"fmt"

	"github.com/osse101/CoinBot_Go/internal/domain"
)

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}
