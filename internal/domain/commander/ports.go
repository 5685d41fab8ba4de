package commander

import "context"

// Repository persists commander snapshots between sessions
type Repository interface {
	Save(ctx context.Context, cmdr *Commander) error
	FindByName(ctx context.Context, name string) (*Commander, error)
	ListAll(ctx context.Context) ([]*Commander, error)
	Delete(ctx context.Context, name string) error
}
