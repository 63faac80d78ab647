package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportContentType — тип контента, на который подана жалоба.
type ReportContentType string

const (
	ReportContentIdea    ReportContentType = "idea"
	ReportContentComment ReportContentType = "comment"
)

// Valid проверяет, что тип входит в допустимый набор.
func (t ReportContentType) Valid() bool {
	return t == ReportContentIdea || t == ReportContentComment
}

// ReportReason — категория жалобы (набор из клиента платформы).
type ReportReason string

const (
	ReasonSpam           ReportReason = "spam"
	ReasonInappropriate  ReportReason = "inappropriate"
	ReasonHarassment     ReportReason = "harassment"
	ReasonMisinformation ReportReason = "misinformation"
	ReasonOffensive      ReportReason = "offensive"
	ReasonOther          ReportReason = "other"
)

// Valid проверяет, что категория входит в допустимый набор.
func (r ReportReason) Valid() bool {
	switch r {
	case ReasonSpam, ReasonInappropriate, ReasonHarassment,
		ReasonMisinformation, ReasonOffensive, ReasonOther:
		return true
	default:
		return false
	}
}

// ReportStatus — статус жалобы. Монотонный: pending — начальный,
// reviewed/resolved — терминальные, возврата назад нет.
type ReportStatus int16

const (
	ReportStatusPending ReportStatus = iota
	ReportStatusReviewed
	ReportStatusResolved
)

// Terminal сообщает, является ли статус терминальным.
func (s ReportStatus) Terminal() bool {
	return s == ReportStatusReviewed || s == ReportStatusResolved
}

// String возвращает каноническое строковое представление статуса.
func (s ReportStatus) String() string {
	switch s {
	case ReportStatusReviewed:
		return "reviewed"
	case ReportStatusResolved:
		return "resolved"
	default:
		return "pending"
	}
}

// ParseReportStatus разбирает строковое представление статуса.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch s {
	case "pending":
		return ReportStatusPending, true
	case "reviewed":
		return ReportStatusReviewed, true
	case "resolved":
		return ReportStatusResolved, true
	default:
		return ReportStatusPending, false
	}
}

// ReportAction — действие модератора при резолюции жалобы.
type ReportAction string

const (
	// ActionDeleteContent — мягкое удаление контента, на который подана жалоба.
	ActionDeleteContent ReportAction = "delete_content"
)

// Report — внутренняя доменная модель жалобы.
// Дедупликация не выполняется: один пользователь может подать несколько
// жалоб на один и тот же контент, каждая отслеживается независимо.
// ContentID сохраняется и после удаления контента (аудит).
type Report struct {
	ID          uuid.UUID
	ContentType ReportContentType
	ContentID   uuid.UUID
	ReporterID  uuid.UUID
	Reason      ReportReason
	Description string
	Status      ReportStatus
	Resolution  string
	Action      ReportAction
	ReviewedBy  uuid.UUID
	ReviewedAt  *time.Time
	CreatedAt   time.Time
}
