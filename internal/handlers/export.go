package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/export"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type ExportHandler struct {
	store store.Store
}

func NewExportHandler(s store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// HandleExportBookings streams the authenticated user's bookings as an xlsx
// attachment. Runs behind the auth middleware, which puts the user id on the
// request context.
func (h *ExportHandler) HandleExportBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(uint)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := h.store.ListBookings(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}

	workbook, err := export.BookingsWorkbook(bookings)
	if err != nil {
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(workbook)
}
