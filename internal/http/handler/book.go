package handler

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/core"
	"bookshelf/internal/http/payload"
)

func (h *ShelfHandler) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var bookPayload payload.BookRequest
	err := h.requestValidator.DecodeJSONPayload(r, &bookPayload)
	if err != nil {
		h.respondText(w, "Failed to create", http.StatusBadRequest)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", CreateBook,
			"request_id", requestId)
		return
	}

	book, err := h.shelf.AddBook(r.Context(), bookPayload.ToRecord())
	if err != nil {
		h.respondText(w, "Failed to create", http.StatusBadRequest)
		h.logs.Errorw("failed to create book",
			"error", err,
			"handler", CreateBook,
			"request_id", requestId)
		return
	}

	h.respond(w, book, http.StatusCreated, requestId)
}

func (h *ShelfHandler) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	books, err := h.shelf.GetBooks(r.Context())
	if err != nil {
		h.respondText(w, "Failed to fetch", http.StatusInternalServerError)
		h.logs.Errorw("failed to get books",
			"error", err,
			"handler", ListBooks,
			"request_id", requestId)
		return
	}

	h.respond(w, books, http.StatusOK, requestId)
}

func (h *ShelfHandler) HandleGetBook(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	id, err := parseBookID(r)
	if err != nil {
		h.respond(w, map[string]string{
			"error": err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("invalid book id",
			"error", err,
			"handler", GetBook,
			"request_id", requestId)
		return
	}

	book, err := h.shelf.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			h.respond(w, map[string]string{
				"message": "Book not found",
			}, http.StatusNotFound,
				requestId)
			return
		}
		h.respond(w, map[string]string{
			"error": err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get book",
			"error", err,
			"handler", GetBook,
			"request_id", requestId)
		return
	}

	h.respond(w, book, http.StatusOK, requestId)
}

func (h *ShelfHandler) HandleUpdateBook(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	id, err := parseBookID(r)
	if err != nil {
		h.respondText(w, "Failed to update", http.StatusBadRequest)
		h.logs.Errorw("invalid book id",
			"error", err,
			"handler", UpdateBook,
			"request_id", requestId)
		return
	}

	var bookPayload payload.BookUpdateRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &bookPayload); err != nil {
		h.respondText(w, "Failed to update", http.StatusBadRequest)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", UpdateBook,
			"request_id", requestId)
		return
	}

	book, err := h.shelf.UpdateBook(r.Context(), id, bookPayload.Fields())
	if err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			h.respondText(w, "Book not found", http.StatusNotFound)
			return
		}
		h.respondText(w, "Failed to update", http.StatusBadRequest)
		h.logs.Errorw("failed to update book",
			"error", err,
			"handler", UpdateBook,
			"request_id", requestId)
		return
	}

	h.respond(w, book, http.StatusOK, requestId)
}

func (h *ShelfHandler) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	id, err := parseBookID(r)
	if err != nil {
		h.respondText(w, "Failed to delete", http.StatusInternalServerError)
		h.logs.Errorw("invalid book id",
			"error", err,
			"handler", DeleteBook,
			"request_id", requestId)
		return
	}

	// no existence check, deleting an absent id still answers 200
	if err := h.shelf.DeleteBook(r.Context(), id); err != nil {
		h.respondText(w, "Failed to delete", http.StatusInternalServerError)
		h.logs.Errorw("failed to delete book",
			"error", err,
			"handler", DeleteBook,
			"request_id", requestId)
		return
	}

	h.respondText(w, "The item is deleted successfully", http.StatusOK)
}

func parseBookID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
