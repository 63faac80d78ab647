package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/civic-engagement-service/internal/models"
	"github.com/pribylovaa/civic-engagement-service/internal/storage"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    ApplyVote: toggle/switch/remove с пересчётом счётчиков из idea_votes;
//    CastVote: одноразовый голос, закрытый опрос, незаявленный вариант;
//    CreateComment: пересчёт comments_count и ErrNotFound на удалённую идею;
//    CreateReport/ResolveReport: монотонность статуса и каскад delete_content
//      для идей и комментариев (с пересчётом comments_count родительской идеи);
//    UpsertUser: вставка и обновление без смены роли;
//    UserActivity/Stats: агрегаты из исходных таблиц.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting postgres container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// seedUser — заводит аккаунт с заданной ролью.
func seedUser(t *testing.T, st *Storage, username string, role models.Role) *models.User {
	t.Helper()
	u, err := st.UpsertUser(context.Background(), &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.org",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

// seedIdea — заводит идею от имени автора.
func seedIdea(t *testing.T, st *Storage, author *models.User, title string) *models.Idea {
	t.Helper()
	idea, err := st.CreateIdea(context.Background(), &models.Idea{
		Title:       title,
		Description: "description de test",
		Tags:        []string{"test"},
		AuthorID:    author.ID,
		AuthorName:  author.Username,
		Status:      models.IdeaStatusDiscussion,
	})
	require.NoError(t, err)
	return idea
}

func TestIntegration_UpsertUser_InsertAndUpdate(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	u := seedUser(t, st, "alice", models.RoleUser)
	require.Equal(t, models.RoleUser, u.Role)
	require.False(t, u.IsBanned)

	// Повторный upsert обновляет username/email, но не роль.
	_, err := st.UpdateRole(ctx, u.ID, models.RoleModerator)
	require.NoError(t, err)

	upd, err := st.UpsertUser(ctx, &models.User{
		ID:       u.ID,
		Username: "alice-renamed",
		Email:    "alice-new@example.org",
		Role:     models.RoleUser, // игнорируется при апдейте
	})
	require.NoError(t, err)
	require.Equal(t, "alice-renamed", upd.Username)
	require.Equal(t, "alice-new@example.org", upd.Email)
	require.Equal(t, models.RoleModerator, upd.Role)
}

func TestIntegration_UserByID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ApplyVote_ToggleSwitchRemove(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := seedUser(t, st, "author", models.RoleUser)
	voter := seedUser(t, st, "voter", models.RoleUser)
	idea := seedIdea(t, st, author, "Pistes cyclables")

	// 1) Первый голос "up": счётчики 1/0, голос записан.
	res, err := st.ApplyVote(ctx, idea.ID, voter.ID, models.VoteActionUp)
	require.NoError(t, err)
	require.EqualValues(t, 1, res.VotesUp)
	require.EqualValues(t, 0, res.VotesDown)
	require.Equal(t, models.VoteUp, res.UserVote)
	require.Equal(t, author.ID, res.AuthorID)
	require.True(t, res.Recorded)

	// 2) Повторный "up" — снятие (toggle): 0/0, no vote.
	res, err = st.ApplyVote(ctx, idea.ID, voter.ID, models.VoteActionUp)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.VotesUp)
	require.EqualValues(t, 0, res.VotesDown)
	require.Equal(t, models.VoteNone, res.UserVote)
	require.False(t, res.Recorded)

	// 3) "up", затем "down" — переключение: 0/1.
	_, err = st.ApplyVote(ctx, idea.ID, voter.ID, models.VoteActionUp)
	require.NoError(t, err)
	res, err = st.ApplyVote(ctx, idea.ID, voter.ID, models.VoteActionDown)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.VotesUp)
	require.EqualValues(t, 1, res.VotesDown)
	require.Equal(t, models.VoteDown, res.UserVote)
	require.True(t, res.Recorded)

	// 4) Голос viewer-а виден при чтении идеи.
	got, err := st.IdeaByID(ctx, idea.ID, voter.ID)
	require.NoError(t, err)
	require.Equal(t, models.VoteDown, got.UserVote)
	require.EqualValues(t, 1, got.VotesDown)

	// 5) Анонимное чтение — без пользовательского голоса.
	got, err = st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, models.VoteNone, got.UserVote)
}

func TestIntegration_ApplyVote_IdeaNotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	voter := seedUser(t, st, "voter2", models.RoleUser)

	_, err := st.ApplyVote(context.Background(), uuid.New(), voter.ID, models.VoteActionUp)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_CastVote_OneShot(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC()

	creator := seedUser(t, st, "moder", models.RoleModerator)
	voter := seedUser(t, st, "citizen", models.RoleUser)

	poll, err := st.CreatePoll(ctx, &models.Poll{
		Title:       "Budget participatif",
		Description: "Quel projet financer ?",
		Options:     []string{"parc", "bibliothèque"},
		CreatedBy:   creator.ID,
	})
	require.NoError(t, err)

	// Незаявленный вариант.
	_, err = st.CastVote(ctx, poll.ID, voter.ID, "piscine", now)
	require.ErrorIs(t, err, storage.ErrInvalidOption)

	// Успешный первый голос.
	got, err := st.CastVote(ctx, poll.ID, voter.ID, "parc", now)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.Votes["parc"])
	require.Equal(t, "parc", got.UserVote)

	// Повторный голос — даже за другой вариант — отклоняется.
	_, err = st.CastVote(ctx, poll.ID, voter.ID, "bibliothèque", now)
	require.ErrorIs(t, err, storage.ErrAlreadyVoted)
}

func TestIntegration_CastVote_ClosedPoll(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	creator := seedUser(t, st, "moder2", models.RoleModerator)
	voter := seedUser(t, st, "citizen2", models.RoleUser)

	past := time.Now().UTC().Add(-time.Hour)
	poll, err := st.CreatePoll(ctx, &models.Poll{
		Title:     "Sondage terminé",
		Options:   []string{"oui", "non"},
		CreatedBy: creator.ID,
		EndsAt:    &past,
	})
	require.NoError(t, err)

	// Закрытость проверяется раньше валидности варианта.
	_, err = st.CastVote(ctx, poll.ID, voter.ID, "nimporte", time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrPollClosed)

	_, err = st.CastVote(ctx, poll.ID, voter.ID, "oui", time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrPollClosed)
}

func TestIntegration_CreateComment_BumpsCounter(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := seedUser(t, st, "author3", models.RoleUser)
	commenter := seedUser(t, st, "commenter", models.RoleUser)
	idea := seedIdea(t, st, author, "Compost de quartier")

	c, err := st.CreateComment(ctx, &models.Comment{
		IdeaID:     idea.ID,
		AuthorID:   commenter.ID,
		AuthorName: commenter.Username,
		Content:    "Très bonne idée !",
	})
	require.NoError(t, err)
	require.Equal(t, idea.ID, c.IdeaID)

	got, err := st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.CommentsCount)

	list, err := st.ListByIdea(ctx, idea.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Très bonne idée !", list[0].Content)

	// Комментарий к несуществующей идее.
	_, err = st.CreateComment(ctx, &models.Comment{
		IdeaID:     uuid.New(),
		AuthorID:   commenter.ID,
		AuthorName: commenter.Username,
		Content:    "perdu",
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ResolveReport_CascadeAndMonotonic(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC()

	author := seedUser(t, st, "author4", models.RoleUser)
	reporter := seedUser(t, st, "reporter", models.RoleUser)
	moder := seedUser(t, st, "moder3", models.RoleModerator)
	idea := seedIdea(t, st, author, "Contenu douteux")

	rep, err := st.CreateReport(ctx, &models.Report{
		ContentType: models.ReportContentIdea,
		ContentID:   idea.ID,
		ReporterID:  reporter.ID,
		Reason:      models.ReasonSpam,
		Description: "publicité déguisée",
	})
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusPending, rep.Status)

	resolved, err := st.ResolveReport(ctx, rep.ID, moder.ID, "contenu supprimé", models.ActionDeleteContent, now)
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusResolved, resolved.Status)
	require.Equal(t, models.ActionDeleteContent, resolved.Action)
	require.Equal(t, moder.ID, resolved.ReviewedBy)
	require.NotNil(t, resolved.ReviewedAt)

	// Каскад: идея мягко удалена, но content_id в жалобе сохранён.
	_, err = st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Equal(t, idea.ID, resolved.ContentID)

	// Терминальный статус монотонен: повторный резолв отклоняется.
	_, err = st.ResolveReport(ctx, rep.ID, moder.ID, "encore", models.ReportAction(""), now)
	require.ErrorIs(t, err, storage.ErrAlreadyResolved)
}

func TestIntegration_ResolveReport_CommentCascade(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := seedUser(t, st, "author7", models.RoleUser)
	commenter := seedUser(t, st, "commenter2", models.RoleUser)
	reporter := seedUser(t, st, "reporter4", models.RoleUser)
	moder := seedUser(t, st, "moder5", models.RoleModerator)
	idea := seedIdea(t, st, author, "Jardins partagés")

	bad, err := st.CreateComment(ctx, &models.Comment{
		IdeaID:     idea.ID,
		AuthorID:   commenter.ID,
		AuthorName: commenter.Username,
		Content:    "commentaire injurieux",
	})
	require.NoError(t, err)

	_, err = st.CreateComment(ctx, &models.Comment{
		IdeaID:     idea.ID,
		AuthorID:   commenter.ID,
		AuthorName: commenter.Username,
		Content:    "commentaire correct",
	})
	require.NoError(t, err)

	got, err := st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.CommentsCount)

	rep, err := st.CreateReport(ctx, &models.Report{
		ContentType: models.ReportContentComment,
		ContentID:   bad.ID,
		ReporterID:  reporter.ID,
		Reason:      models.ReasonHarassment,
	})
	require.NoError(t, err)

	resolved, err := st.ResolveReport(ctx, rep.ID, moder.ID, "commentaire supprimé", models.ActionDeleteContent, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusResolved, resolved.Status)

	// Каскад: комментарий мягко удалён, счётчик родительской идеи
	// пересчитан в этой же транзакции.
	got, err = st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.CommentsCount)

	list, err := st.ListByIdea(ctx, idea.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "commentaire correct", list[0].Content)
}

func TestIntegration_ResolveReport_WithoutAction(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := seedUser(t, st, "author5", models.RoleUser)
	reporter := seedUser(t, st, "reporter2", models.RoleUser)
	moder := seedUser(t, st, "moder4", models.RoleModerator)
	idea := seedIdea(t, st, author, "Idée contestée")

	rep, err := st.CreateReport(ctx, &models.Report{
		ContentType: models.ReportContentIdea,
		ContentID:   idea.ID,
		ReporterID:  reporter.ID,
		Reason:      models.ReasonOther,
	})
	require.NoError(t, err)

	resolved, err := st.ResolveReport(ctx, rep.ID, moder.ID, "rien à signaler", models.ReportAction(""), time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusReviewed, resolved.Status)

	// Контент не тронут.
	_, err = st.IdeaByID(ctx, idea.ID, uuid.Nil)
	require.NoError(t, err)
}

func TestIntegration_ListReports_FilterByStatus(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	author := seedUser(t, st, "author6", models.RoleUser)
	reporter := seedUser(t, st, "reporter3", models.RoleUser)
	idea := seedIdea(t, st, author, "Encore une idée")

	for i := 0; i < 2; i++ {
		_, err := st.CreateReport(ctx, &models.Report{
			ContentType: models.ReportContentIdea,
			ContentID:   idea.ID,
			ReporterID:  reporter.ID,
			Reason:      models.ReasonSpam,
		})
		require.NoError(t, err)
	}

	pending := models.ReportStatusPending
	list, err := st.ListReports(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, list, 2)

	resolvedStatus := models.ReportStatusResolved
	list, err = st.ListReports(ctx, &resolvedStatus)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestIntegration_UserActivity_And_Stats(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()
	ctx := context.Background()

	user := seedUser(t, st, "active", models.RoleUser)
	other := seedUser(t, st, "other", models.RoleUser)
	idea := seedIdea(t, st, user, "Idée comptée")

	_, err := st.ApplyVote(ctx, idea.ID, other.ID, models.VoteActionUp)
	require.NoError(t, err)

	_, err = st.CreateComment(ctx, &models.Comment{
		IdeaID:     idea.ID,
		AuthorID:   user.ID,
		AuthorName: user.Username,
		Content:    "merci",
	})
	require.NoError(t, err)

	activity, err := st.UserActivity(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, activity.CommentCount)
	require.EqualValues(t, 0, activity.VoteCount)
	require.EqualValues(t, 1, activity.IdeasAuthored)

	stats, err := st.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Members)
	require.EqualValues(t, 1, stats.Ideas)
	require.EqualValues(t, 1, stats.Votes)
	require.EqualValues(t, 1, stats.Comments)

	admin, err := st.StatsForAdmin(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, admin.TotalUsers)
	require.EqualValues(t, 0, admin.TotalReports)
}

func TestIntegration_ContextDeadline(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := st.UserByID(ctx, uuid.New())
	require.Error(t, err)
	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
