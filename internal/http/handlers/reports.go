package handlers

import (
	"net/http"

	"github.com/google/uuid"

	apierrors "github.com/pribylovaa/civic-engagement-service/internal/errors"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
)

type fileReportRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type resolveReportRequest struct {
	Resolution string `json:"resolution"`
	Action     string `json:"action"`
}

func (h *Handlers) FileReport(w http.ResponseWriter, r *http.Request) {
	var in fileReportRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	contentID, err := uuid.Parse(in.ContentID)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	report, err := h.svc.FileReport(r.Context(), service.FileReportInput{
		ContentType: models.ReportContentType(in.ContentType),
		ContentID:   contentID,
		ReporterID:  actorID(r),
		Reason:      models.ReportReason(in.Reason),
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reportToView(report))
}

func (h *Handlers) ListReports(w http.ResponseWriter, r *http.Request) {
	var status *models.ReportStatus
	if raw := r.URL.Query().Get("report_status"); raw != "" {
		parsed, ok := models.ParseReportStatus(raw)
		if !ok {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		status = &parsed
	}

	reports, err := h.svc.ListReports(r.Context(), actorID(r), status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reportsToView(reports))
}

func (h *Handlers) ResolveReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in resolveReportRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	report, err := h.svc.ResolveReport(r.Context(), service.ResolveReportInput{
		ReportID:    id,
		ModeratorID: actorID(r),
		Resolution:  in.Resolution,
		Action:      models.ReportAction(in.Action),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToView(report))
}
