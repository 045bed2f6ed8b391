package genre

import "context"

type Reader interface {
	Select(ctx context.Context, id int64) (Genre, error)
	SelectAll(ctx context.Context) ([]Genre, error)
}

type Writer interface {
	Insert(ctx context.Context, genre Genre) (int64, error)
	Update(ctx context.Context, genre Genre) error
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
}
