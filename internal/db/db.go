package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTables(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts a single record, the generated primary key is written
// back into the passed struct.
func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
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

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	tx := f.DB.WithContext(ctx).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// UpdateByID applies the given column values to the row with the given id
// and reports how many rows matched.
func (f *PostgresDB) UpdateByID(ctx context.Context, model any, id any, fields map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating record by id: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteByID(ctx context.Context, model any, id any) error {
	if err := f.DB.WithContext(ctx).Delete(model, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting record by id: %w", err)
	}
	return nil
}
