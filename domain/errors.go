package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a delete or update against a table or id that does not
// exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError reports the columns missing from a bulk-import file.
// Handlers map it to 400.
type ValidationError struct {
	Columns []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
