package handler

import (
	"encoding/json"
	"net/http"

	"bookshelf/internal/http/handler/middleware"

	"go.uber.org/zap"
)

var (
	Register   = "POST /api/auth/register"
	Login      = "POST /api/auth/login"
	CreateBook = "POST /api/book/books"
	ListBooks  = "GET /api/book/books"
	GetBook    = "GET /api/book/books/{id}"
	UpdateBook = "PUT /api/book/books/{id}"
	DeleteBook = "DELETE /api/book/books/{id}"
)

type ShelfHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	shelf            ShelfService
}

func NewShelfHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, shelfService ShelfService) *ShelfHandler {
	return &ShelfHandler{
		logs:             logger,
		requestValidator: requestValidator,
		shelf:            shelfService,
	}
}

func (h *ShelfHandler) requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func (h *ShelfHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *ShelfHandler) respondText(w http.ResponseWriter, text string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(text))
}
