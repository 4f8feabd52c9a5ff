package handler

import (
	"bookshelf/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ShelfService . ShelfService
type ShelfService interface {
	Register(ctx context.Context, msg core.AuthMessage) (uint, error)
	Login(ctx context.Context, msg core.AuthMessage) (string, error)
	AddBook(ctx context.Context, record core.BookRecord) (core.BookRecord, error)
	GetBooks(ctx context.Context) ([]core.BookRecord, error)
	GetBook(ctx context.Context, id uint) (core.BookRecord, error)
	UpdateBook(ctx context.Context, id uint, fields map[string]any) (core.BookRecord, error)
	DeleteBook(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
