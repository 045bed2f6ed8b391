package language

import "context"

/* Small interfaces, composed into Repository.
 * Context is always the first parameter in functions that do I/O
 */

type Reader interface {
	Select(ctx context.Context, id int64) (Language, error)
	SelectAll(ctx context.Context) ([]Language, error)
}

type Writer interface {
	Insert(ctx context.Context, language Language) (int64, error)
	Update(ctx context.Context, language Language) error
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
}
