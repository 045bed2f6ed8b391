package author

import "context"

type Reader interface {
	Select(ctx context.Context, id int64) (Author, error)
	SelectAll(ctx context.Context) ([]Author, error)
}

type Writer interface {
	Insert(ctx context.Context, author Author) (int64, error)
	/* Update applies patch to the stored author as a single read-modify-write
	 * transaction and returns the result. Concurrent patches to the same id never lose fields
	 */
	Update(ctx context.Context, id int64, patch Patch) (Author, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
}
