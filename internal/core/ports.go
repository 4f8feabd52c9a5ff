package core

import (
	"bookshelf/internal/repository"
	"context"

	tokenIssuer "bookshelf/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateBook(ctx context.Context, book *repository.Book) error
	GetBooks(ctx context.Context) ([]repository.Book, error)
	GetBookByID(ctx context.Context, id uint) (repository.Book, error)
	UpdateBook(ctx context.Context, id uint, fields map[string]any) (repository.Book, error)
	DeleteBook(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
