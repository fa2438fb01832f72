package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dutchpay/internal/storage"
)

// writeError maps a service error onto the HTTP surface. Missing resources
// get a 404 with the wording the mobile client expects; everything else is
// an opaque 500, logged with the real cause.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, notFoundDetail(err))
		return
	}
	slog.Error("Request failed", "error", err)
	writeDetail(w, http.StatusInternalServerError, "internal server error")
}

// notFoundDetail keeps the original API's wording for the common resources.
func notFoundDetail(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "user"):
		return "User not found"
	case strings.HasPrefix(msg, "group"):
		return "Group not found"
	case strings.HasPrefix(msg, "expense"):
		return "Expense not found"
	default:
		return msg
	}
}
