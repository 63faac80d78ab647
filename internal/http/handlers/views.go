package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/service"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
)

// View-модели HTTP-слоя: доменные сущности наружу не отдаём,
// enum-поля сериализуются каноническими строками.

type ideaView struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Tags           []string `json:"tags"`
	AuthorID       string   `json:"author_id"`
	AuthorName     string   `json:"author_name"`
	Status         string   `json:"status"`
	VotesUp        int64    `json:"votes_up"`
	VotesDown      int64    `json:"votes_down"`
	CommentsCount  int64    `json:"comments_count"`
	UserVote       string   `json:"user_vote,omitempty"`
	AttachmentKeys []string `json:"attachment_keys,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func ideaToView(idea *models.Idea) ideaView {
	return ideaView{
		ID:             idea.ID.String(),
		Title:          idea.Title,
		Description:    idea.Description,
		Tags:           idea.Tags,
		AuthorID:       idea.AuthorID.String(),
		AuthorName:     idea.AuthorName,
		Status:         idea.Status.String(),
		VotesUp:        idea.VotesUp,
		VotesDown:      idea.VotesDown,
		CommentsCount:  idea.CommentsCount,
		UserVote:       string(idea.UserVote),
		AttachmentKeys: idea.AttachmentKeys,
		CreatedAt:      idea.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      idea.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ideasToView(ideas []models.Idea) []ideaView {
	out := make([]ideaView, 0, len(ideas))
	for i := range ideas {
		out = append(out, ideaToView(&ideas[i]))
	}
	return out
}

type voteResultView struct {
	VotesUp   int64  `json:"votes_up"`
	VotesDown int64  `json:"votes_down"`
	UserVote  string `json:"user_vote,omitempty"`
}

type commentView struct {
	ID         string `json:"id"`
	IdeaID     string `json:"idea_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

func commentToView(c *models.Comment) commentView {
	return commentView{
		ID:         c.ID.String(),
		IdeaID:     c.IdeaID.String(),
		AuthorID:   c.AuthorID.String(),
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func commentsToView(comments []models.Comment) []commentView {
	out := make([]commentView, 0, len(comments))
	for i := range comments {
		out = append(out, commentToView(&comments[i]))
	}
	return out
}

type pollOptionView struct {
	Option  string  `json:"option"`
	Votes   int64   `json:"votes"`
	Percent float64 `json:"percent"`
}

type pollView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Options     []pollOptionView `json:"options"`
	TotalVotes  int64            `json:"total_votes"`
	UserVote    string           `json:"user_vote,omitempty"`
	CreatedBy   string           `json:"created_by"`
	EndsAt      string           `json:"ends_at,omitempty"`
	Closed      bool             `json:"closed"`
	CreatedAt   string           `json:"created_at"`
}

func pollToView(p *models.Poll, now time.Time) pollView {
	options := make([]pollOptionView, 0, len(p.Options))
	for _, option := range p.Options {
		options = append(options, pollOptionView{
			Option:  option,
			Votes:   p.Votes[option],
			Percent: p.OptionPercent(option),
		})
	}

	view := pollView{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Options:     options,
		TotalVotes:  p.TotalVotes(),
		UserVote:    p.UserVote,
		CreatedBy:   p.CreatedBy.String(),
		Closed:      p.Closed(now),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.EndsAt != nil {
		view.EndsAt = p.EndsAt.UTC().Format(time.RFC3339)
	}

	return view
}

func pollsToView(polls []models.Poll, now time.Time) []pollView {
	out := make([]pollView, 0, len(polls))
	for i := range polls {
		out = append(out, pollToView(&polls[i], now))
	}
	return out
}

type reportView struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	ReporterID  string `json:"reporter_id"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution,omitempty"`
	Action      string `json:"action,omitempty"`
	ReviewedBy  string `json:"reviewed_by,omitempty"`
	ReviewedAt  string `json:"reviewed_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func reportToView(rep *models.Report) reportView {
	view := reportView{
		ID:          rep.ID.String(),
		ContentType: string(rep.ContentType),
		ContentID:   rep.ContentID.String(),
		ReporterID:  rep.ReporterID.String(),
		Reason:      string(rep.Reason),
		Description: rep.Description,
		Status:      rep.Status.String(),
		Resolution:  rep.Resolution,
		Action:      string(rep.Action),
		CreatedAt:   rep.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rep.ReviewedBy != uuid.Nil {
		view.ReviewedBy = rep.ReviewedBy.String()
	}
	if rep.ReviewedAt != nil {
		view.ReviewedAt = rep.ReviewedAt.UTC().Format(time.RFC3339)
	}

	return view
}

func reportsToView(reports []models.Report) []reportView {
	out := make([]reportView, 0, len(reports))
	for i := range reports {
		out = append(out, reportToView(&reports[i]))
	}
	return out
}

type notificationView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Link      string `json:"link,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func notificationToView(n *models.Notification) notificationView {
	return notificationView{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func notificationsToView(list []models.Notification) []notificationView {
	out := make([]notificationView, 0, len(list))
	for i := range list {
		out = append(out, notificationToView(&list[i]))
	}
	return out
}

type userView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	IsBanned  bool   `json:"is_banned"`
	CreatedAt string `json:"created_at"`
}

func userToView(u *models.User) userView {
	return userView{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func usersToView(users []models.User) []userView {
	out := make([]userView, 0, len(users))
	for i := range users {
		out = append(out, userToView(&users[i]))
	}
	return out
}

type profileView struct {
	userView
	CommentCount  int64    `json:"comment_count"`
	VoteCount     int64    `json:"vote_count"`
	IdeasAuthored int64    `json:"ideas_authored"`
	Badges        []string `json:"badges"`
}

func profileToView(p *service.Profile) profileView {
	return profileView{
		userView:      userToView(p.User),
		CommentCount:  p.Stats.CommentCount,
		VoteCount:     p.Stats.VoteCount,
		IdeasAuthored: p.Stats.IdeasAuthored,
		Badges:        p.Badges,
	}
}

type uploadInfoView struct {
	UploadURL      string            `json:"upload_url"`
	AttachmentKey  string            `json:"attachment_key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

func uploadInfoToView(info *storage.UploadInfo) uploadInfoView {
	return uploadInfoView{
		UploadURL:      info.UploadURL,
		AttachmentKey:  info.AttachmentKey,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}
