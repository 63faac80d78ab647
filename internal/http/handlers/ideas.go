package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

type createIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type updateIdeaStatusRequest struct {
	Status string `json:"status"`
}

type voteRequest struct {
	Action string `json:"action"`
}

type presignAttachmentRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type confirmAttachmentRequest struct {
	Key string `json:"key"`
}

func (h *Handlers) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var in createIdeaRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	idea, err := h.svc.CreateIdea(r.Context(), service.CreateIdeaInput{
		AuthorID:    actorID(r),
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ideaToView(idea))
}

func (h *Handlers) ListIdeas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.IdeaFilter{
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
	}
	if sort := query.Get("sort"); sort == string(models.IdeaSortTop) {
		filter.Sort = models.IdeaSortTop
	}

	ideas, err := h.svc.ListIdeas(r.Context(), filter, actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ideasToView(ideas))
}

func (h *Handlers) GetIdeaByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	idea, err := h.svc.IdeaByID(r.Context(), id, actorID(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ideaToView(idea))
}

func (h *Handlers) UpdateIdeaStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateIdeaStatusRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	status, ok := models.ParseIdeaStatus(in.Status)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	idea, err := h.svc.UpdateIdeaStatus(r.Context(), actorID(r), id, status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ideaToView(idea))
}

func (h *Handlers) VoteIdea(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in voteRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.svc.ApplyVote(r.Context(), service.ApplyVoteInput{
		IdeaID: id,
		UserID: actorID(r),
		Action: models.VoteAction(in.Action),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResultView{
		VotesUp:   result.VotesUp,
		VotesDown: result.VotesDown,
		UserVote:  string(result.UserVote),
	})
}

func (h *Handlers) PresignAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in presignAttachmentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.AttachmentUploadURL(r.Context(), service.AttachmentUploadInput{
		ActorID:       actorID(r),
		IdeaID:        id,
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoToView(info))
}

func (h *Handlers) ConfirmAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in confirmAttachmentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	idea, err := h.svc.ConfirmAttachment(r.Context(), service.ConfirmAttachmentInput{
		ActorID: actorID(r),
		IdeaID:  id,
		Key:     in.Key,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ideaToView(idea))
}
