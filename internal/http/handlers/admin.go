package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdminStats(r.Context(), actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"total_users":    stats.TotalUsers,
		"total_ideas":    stats.TotalIdeas,
		"total_comments": stats.TotalComments,
		"total_votes":    stats.TotalVotes,
		"total_reports":  stats.TotalReports,
		"pending_count":  stats.PendingCount,
	})
}

func (h *Handlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.AdminUsers(r.Context(), actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersToView(users))
}

func (h *Handlers) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	role, ok := models.ParseRole(r.URL.Query().Get("role"))
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.ChangeUserRole(r.Context(), service.ChangeUserRoleInput{
		AdminID: actorID(r),
		UserID:  id,
		Role:    role,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToView(user))
}

func (h *Handlers) SetUserBan(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	banned, err := strconv.ParseBool(r.URL.Query().Get("banned"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.SetUserBan(r.Context(), service.SetUserBanInput{
		AdminID: actorID(r),
		UserID:  id,
		Banned:  banned,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToView(user))
}
