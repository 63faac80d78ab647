package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
)

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user := actorID(r)
	if user == uuid.Nil {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	list, err := h.svc.Notifications(r.Context(), user)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notificationsToView(list))
}

func (h *Handlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	user := actorID(r)
	if user == uuid.Nil {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	count, err := h.svc.UnreadCount(r.Context(), user)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"unread_count": count})
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user := actorID(r)
	if user == uuid.Nil {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.MarkNotificationRead(r.Context(), id, user); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	user := actorID(r)
	if user == uuid.Nil {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	if err := h.svc.MarkAllNotificationsRead(r.Context(), user); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
