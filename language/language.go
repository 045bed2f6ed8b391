package language

import "errors"

/* Language represents a language a book can be written in.
 * Value semantics: it is data, not an API
 */
type Language struct {
	ID   int64
	Name string
}

// ErrNotFound is returned when no language has the requested id
var ErrNotFound = errors.New("language not found")
