// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package httpapi adapts unary handler functions to the JSON envelope the
// web client consumes: {"success": true, ...fields} on success and
// {"success": false, "error": msg} on failure. No error escapes a handler as
// anything else.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/curioswitch/lutongbahay/server/internal/errs"
)

// Handle registers fn as a JSON POST endpoint on the mux.
func Handle[Req any, Resp any](mux chi.Router, pattern string, fn func(ctx context.Context, req *Req) (*Resp, error)) {
	mux.Post(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req Req
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeFailure(ctx, w, fmt.Errorf("invalid request body: %w", errs.ErrInvalidArgument))
				return
			}
		}
		resp, err := fn(ctx, &req)
		if err != nil {
			writeFailure(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, resp)
	})
}

// Error returns an error that unwraps to kind but renders msg to the client.
func Error(kind error, msg string) error {
	return &apiError{kind: kind, msg: msg}
}

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func writeSuccess(ctx context.Context, w http.ResponseWriter, resp any) {
	// Flatten the response fields next to the success flag.
	data, err := json.Marshal(resp)
	if err != nil {
		writeFailure(ctx, w, fmt.Errorf("httpapi: marshalling response: %w", err))
		return
	}
	fields := map[string]any{}
	if err := json.Unmarshal(data, &fields); err != nil {
		writeFailure(ctx, w, fmt.Errorf("httpapi: flattening response: %w", err))
		return
	}
	fields["success"] = true
	writeJSON(ctx, w, http.StatusOK, fields)
}

func writeFailure(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "httpapi: handler failed", "error", err)
	}
	writeJSON(ctx, w, status, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "httpapi: writing response", "error", err)
	}
}
