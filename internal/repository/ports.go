package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	UpsertToTable(ctx context.Context, records any, column string, updateColumns ...string) error
	UpdateWhereIn(ctx context.Context, model any, column string, values any, updates map[string]any) error
	DeleteWhereIn(ctx context.Context, model any, column string, values any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetPage(ctx context.Context, query string, args []any, order string, limit int, entity any) error
}
