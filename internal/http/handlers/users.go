package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

// Me возвращает собственный профиль с производными бейджами.
// Побочный эффект: профиль заводится лениво — при первом обращении
// строка аккаунта создаётся из клеймов токена.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(r)
	if !ok {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	profile, err := h.svc.SyncUser(r.Context(), service.SyncUserInput{
		UserID:   id.UserID,
		Username: id.Username,
		Email:    id.Email,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToView(profile))
}

func (h *Handlers) UserBadges(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	profile, err := h.svc.UserProfile(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id":        profile.User.ID.String(),
		"badges":         profile.Badges,
		"comment_count":  profile.Stats.CommentCount,
		"vote_count":     profile.Stats.VoteCount,
		"ideas_authored": profile.Stats.IdeasAuthored,
	})
}

func (h *Handlers) PlatformStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.PlatformStats(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"members":  stats.Members,
		"ideas":    stats.Ideas,
		"votes":    stats.Votes,
		"comments": stats.Comments,
	})
}
