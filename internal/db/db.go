package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, a pointer to a slice of models.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if empty, err := emptySlice(records); err != nil || empty {
		return err
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// UpsertToTable inserts records and, on a conflict on column, overwrites
// updateColumns. Without updateColumns conflicting rows are left as they are.
func (f *PostgresDB) UpsertToTable(ctx context.Context, records any, column string, updateColumns ...string) error {
	if empty, err := emptySlice(records); err != nil || empty {
		return err
	}

	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: column}}}
	if len(updateColumns) == 0 {
		onConflict.DoNothing = true
	} else {
		onConflict.DoUpdates = clause.AssignmentColumns(updateColumns)
	}

	if err := f.DB.WithContext(ctx).Clauses(onConflict).Create(records).Error; err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) UpdateWhereIn(ctx context.Context, model any, column string, values any, updates map[string]any) error {
	query := fmt.Sprintf("%s IN ?", column)
	if err := f.DB.WithContext(ctx).Model(model).Where(query, values).Updates(updates).Error; err != nil {
		return fmt.Errorf("updating records by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) DeleteWhereIn(ctx context.Context, model any, column string, values any) error {
	query := fmt.Sprintf("%s IN ?", column)
	if err := f.DB.WithContext(ctx).Where(query, values).Delete(model).Error; err != nil {
		return fmt.Errorf("deleting records by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// GetPage loads at most limit records matching query, sorted by order.
func (f *PostgresDB) GetPage(ctx context.Context, query string, args []any, order string, limit int, entity any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Order(order).Limit(limit).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting page ordered by %q: %w", order, tx.Error)
	}
	return nil
}

func emptySlice(records any) (bool, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return false, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem().Len() == 0, nil
}
