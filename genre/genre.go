package genre

import "errors"

// Genre is a literary category (Science Fiction, Poetry, ...)
type Genre struct {
	ID   int64
	Name string
}

var ErrNotFound = errors.New("genre not found")
