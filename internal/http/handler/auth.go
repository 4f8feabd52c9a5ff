package handler

import (
	"errors"
	"fmt"
	"net/http"

	"bookshelf/internal/core"
	"bookshelf/internal/http/payload"
)

func (h *ShelfHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	userId, err := h.shelf.Register(r.Context(), authPayload.ToMessage())
	if err != nil {
		// persistence failures, duplicate usernames included, carry the
		// underlying error text
		h.respond(w, map[string]string{
			"error": err.Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"message": "User created",
		"userId":  userId,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *ShelfHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := h.requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.shelf.Login(r.Context(), authPayload.ToMessage())
	if err != nil {
		// unknown user and wrong password answer identically so responses
		// cannot be used to probe for usernames
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.respond(w, map[string]string{
				"message": "Invalid username or password",
			}, http.StatusUnauthorized,
				requestId)
		} else {
			h.respond(w, map[string]string{
				"error": "Internal server error",
			}, http.StatusInternalServerError,
				requestId)
		}
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}
