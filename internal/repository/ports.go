package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTables(tbl ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entity any) error
	UpdateByID(ctx context.Context, model any, id any, fields map[string]any) (int64, error)
	DeleteByID(ctx context.Context, model any, id any) error
}
