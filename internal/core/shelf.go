package core

import (
	"bookshelf/internal/repository"
	"context"
	"errors"
	"fmt"

	tokenIssuer "bookshelf/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrBookNotFound error = errors.New("book not found")

// Shelf provides account registration, login and book persistence operations.
type Shelf struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewShelf(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Shelf {
	return &Shelf{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the password and creates the account, returning the
// generated user id. A taken username surfaces as the repository's
// uniqueness error.
func (s *Shelf) Register(ctx context.Context, msg AuthMessage) (uint, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return user.ID, nil
}

// Login checks the credentials against the stored hash and issues a signed
// token for the account.
func (s *Shelf) Login(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user by username: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserID:   user.ID,
		Username: user.Username,
	}
	token := s.jwtIssuer.Generate(tokenInfo)
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (s *Shelf) AddBook(ctx context.Context, record BookRecord) (BookRecord, error) {
	book := repository.Book{
		Title:    record.Title,
		Author:   record.Author,
		ImageURL: record.ImageURL,
	}
	if err := s.repo.CreateBook(ctx, &book); err != nil {
		return BookRecord{}, fmt.Errorf("create book: %w", err)
	}

	s.logs.Infow("book created", "bookId", book.ID, "title", book.Title)

	return s.repoBookToRecord(book), nil
}

func (s *Shelf) GetBooks(ctx context.Context) ([]BookRecord, error) {
	books, err := s.repo.GetBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get books: %w", err)
	}

	records := make([]BookRecord, len(books))
	for i, book := range books {
		records[i] = s.repoBookToRecord(book)
	}

	return records, nil
}

func (s *Shelf) GetBook(ctx context.Context, id uint) (BookRecord, error) {
	book, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return BookRecord{}, ErrBookNotFound
		}
		return BookRecord{}, fmt.Errorf("get book by id: %w", err)
	}

	return s.repoBookToRecord(book), nil
}

// UpdateBook applies a partial update, only the supplied columns are
// touched. An empty update returns the current row unchanged.
func (s *Shelf) UpdateBook(ctx context.Context, id uint, fields map[string]any) (BookRecord, error) {
	var book repository.Book
	var err error

	if len(fields) == 0 {
		book, err = s.repo.GetBookByID(ctx, id)
	} else {
		book, err = s.repo.UpdateBook(ctx, id, fields)
	}
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return BookRecord{}, ErrBookNotFound
		}
		return BookRecord{}, fmt.Errorf("update book: %w", err)
	}

	s.logs.Infow("book updated", "bookId", id)

	return s.repoBookToRecord(book), nil
}

func (s *Shelf) DeleteBook(ctx context.Context, id uint) error {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.logs.Infow("book deleted", "bookId", id)

	return nil
}

func (s *Shelf) repoBookToRecord(book repository.Book) BookRecord {
	return BookRecord{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		ImageURL: book.ImageURL,
	}
}
