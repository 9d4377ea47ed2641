package validation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"mediorg/internal/models"
)

// ErrNoOperations is returned when a run would have nothing to do.
var ErrNoOperations = errors.New(
	"you must specify at least one operation: --prefix, --postfix, --remove, --clean or --mkfolders")

// ValidateRunOperations enforces that at least one operation is requested
// before the core is invoked.
func ValidateRunOperations(cfg *models.RenameConfig, mkFolders bool) error {
	return validation.Validate(cfg, validation.By(func(value any) error {
		c, ok := value.(*models.RenameConfig)
		if !ok {
			return errors.New("invalid rename configuration type")
		}
		if c.HasRenameOps() || mkFolders {
			return nil
		}
		return ErrNoOperations
	}))
}
