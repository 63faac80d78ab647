package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

type createPollRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
	EndsAt      string   `json:"ends_at"`
}

type castPollVoteRequest struct {
	Option string `json:"option"`
}

func (h *Handlers) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var in createPollRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var endsAt *time.Time
	if in.EndsAt != "" {
		parsed, err := time.Parse(time.RFC3339, in.EndsAt)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		endsAt = &parsed
	}

	poll, err := h.svc.CreatePoll(r.Context(), service.CreatePollInput{
		Title:       in.Title,
		Description: in.Description,
		Options:     in.Options,
		CreatedBy:   actorID(r),
		EndsAt:      endsAt,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pollToView(poll, time.Now().UTC()))
}

func (h *Handlers) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.svc.ListPolls(r.Context(), actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pollsToView(polls, time.Now().UTC()))
}

func (h *Handlers) GetPollByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	poll, err := h.svc.PollByID(r.Context(), id, actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pollToView(poll, time.Now().UTC()))
}

func (h *Handlers) CastPollVote(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in castPollVoteRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	poll, err := h.svc.CastPollVote(r.Context(), service.CastPollVoteInput{
		PollID: id,
		UserID: actorID(r),
		Option: in.Option,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pollToView(poll, time.Now().UTC()))
}
