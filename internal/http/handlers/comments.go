package handlers

import (
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

type createCommentRequest struct {
	IdeaID  string `json:"idea_id"`
	Content string `json:"content"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in createCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	ideaID, err := uuid.Parse(in.IdeaID)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), service.CreateCommentInput{
		IdeaID:   ideaID,
		AuthorID: actorID(r),
		Content:  in.Content,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToView(comment))
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comments, err := h.svc.CommentsByIdea(r.Context(), ideaID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsToView(comments))
}
