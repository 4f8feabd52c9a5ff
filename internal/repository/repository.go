package repository

import (
	"bookshelf/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrBookNotFound error = errors.New("book not found")

type ShelfRepository struct {
	db Storage
}

func NewShelfRepository(db Storage) *ShelfRepository {
	return &ShelfRepository{
		db: db,
	}
}

func (r *ShelfRepository) MigrateTables() error {
	err := r.db.MigrateTables(&User{}, &Book{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *ShelfRepository) CreateUser(ctx context.Context, user *User) error {
	if err := r.db.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *ShelfRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *ShelfRepository) CreateBook(ctx context.Context, book *Book) error {
	if err := r.db.Create(ctx, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *ShelfRepository) GetBooks(ctx context.Context) ([]Book, error) {
	books := []Book{}
	if err := r.db.GetAll(ctx, &books); err != nil {
		return nil, fmt.Errorf("get all books: %w", err)
	}

	return books, nil
}

func (r *ShelfRepository) GetBookByID(ctx context.Context, id uint) (Book, error) {
	var book Book

	err := r.db.GetOneBy(ctx, "id", id, &book)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Book{}, ErrBookNotFound
		}
		return Book{}, fmt.Errorf("get book by id: %w", err)
	}

	return book, nil
}

// UpdateBook applies the given column values to the book with the given id
// and returns the updated row.
func (r *ShelfRepository) UpdateBook(ctx context.Context, id uint, fields map[string]any) (Book, error) {
	updated, err := r.db.UpdateByID(ctx, &Book{}, id, fields)
	if err != nil {
		return Book{}, fmt.Errorf("update book: %w", err)
	}

	if updated == 0 {
		return Book{}, ErrBookNotFound
	}

	return r.GetBookByID(ctx, id)
}

func (r *ShelfRepository) DeleteBook(ctx context.Context, id uint) error {
	if err := r.db.DeleteByID(ctx, &Book{}, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}
