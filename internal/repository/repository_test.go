package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/internal/domain/token"
	"github.com/Sahindou/ifrit-ticket/internal/domain/user"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepos(t *testing.T) (*repository.Repos, *gorm.DB) {
	db := testutils.NewSQLiteDB(t)
	return repository.NewRepositories(db), db
}

func mustType(t *testing.T, repos *repository.Repos, name string) tickettype.TicketType {
	tt := tickettype.TicketType{Name: name}
	require.NoError(t, repos.TicketType.CreateTicketType(&tt))
	return tt
}

func mustTicket(t *testing.T, repos *repository.Repos, typeID, title string) ticket.Ticket {
	tk := ticket.Ticket{
		Title:       title,
		Description: "desc",
		Status:      ticket.StatusToDo,
		Priority:    ticket.PriorityLow,
		TypeID:      typeID,
	}
	require.NoError(t, repos.Ticket.CreateTicket(&tk))
	return tk
}

func TestTicketRepo_CRUD(t *testing.T) {
	repos, _ := setupRepos(t)
	tt := mustType(t, repos, "incident")

	first := mustTicket(t, repos, tt.ID, "first")
	time.Sleep(5 * time.Millisecond)
	second := mustTicket(t, repos, tt.ID, "second")
	assert.NotEmpty(t, first.ID)

	got, err := repos.Ticket.GetTicketByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, ticket.StatusToDo, got.Status)
	assert.Nil(t, got.DueDate)

	list, err := repos.Ticket.ListTickets()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	due := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	got.Status = ticket.StatusDone
	got.DueDate = &due
	require.NoError(t, repos.Ticket.SaveTicket(&got))

	reloaded, err := repos.Ticket.GetTicketByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusDone, reloaded.Status)
	require.NotNil(t, reloaded.DueDate)
	assert.Equal(t, "25-12-2025", *ticket.FormatDueDate(reloaded.DueDate))

	require.NoError(t, repos.Ticket.DeleteTicket(first.ID))
	_, err = repos.Ticket.GetTicketByID(first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repos.Ticket.DeleteTicket(first.ID), gorm.ErrRecordNotFound)
}

func TestTicketRepo_SaveDoesNotRecreateDeletedTicket(t *testing.T) {
	repos, db := setupRepos(t)
	tt := mustType(t, repos, "incident")
	tk := mustTicket(t, repos, tt.ID, "stale")

	read, err := repos.Ticket.GetTicketByID(tk.ID)
	require.NoError(t, err)
	require.NoError(t, repos.Ticket.DeleteTicket(tk.ID))

	read.Status = ticket.StatusDone
	assert.ErrorIs(t, repos.Ticket.SaveTicket(&read), gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&ticket.Ticket{}).Where("id = ?", tk.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTicketTypeRepo_SaveDoesNotRecreateDeletedType(t *testing.T) {
	repos, db := setupRepos(t)
	tt := mustType(t, repos, "incident")

	require.NoError(t, repos.TicketType.DeleteTicketType(tt.ID))
	tt.Name = "renamed"
	assert.ErrorIs(t, repos.TicketType.SaveTicketType(&tt), gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&tickettype.TicketType{}).Where("id = ?", tt.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTicketRepo_RejectsUnknownType(t *testing.T) {
	repos, _ := setupRepos(t)
	tk := ticket.Ticket{Title: "x", Description: "y", Status: ticket.StatusToDo, Priority: ticket.PriorityLow, TypeID: "3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44"}
	assert.Error(t, repos.Ticket.CreateTicket(&tk))
}

func TestTicketTypeRepo_ListOrderedByName(t *testing.T) {
	repos, _ := setupRepos(t)
	mustType(t, repos, "incident")
	mustType(t, repos, "amélioration")
	mustType(t, repos, "bug")

	list, err := repos.TicketType.ListTicketTypes()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"amélioration", "bug", "incident"}, []string{list[0].Name, list[1].Name, list[2].Name})

	n, err := repos.TicketType.CountTicketTypes()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	found, err := repos.TicketType.GetTicketTypeByName("INCIDENT")
	require.NoError(t, err)
	assert.Equal(t, "incident", found.Name)

	_, err = repos.TicketType.GetTicketTypeByName("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTicketTypeRepo_DeleteCascades(t *testing.T) {
	repos, _ := setupRepos(t)
	doomed := mustType(t, repos, "incident")
	kept := mustType(t, repos, "bug")

	gone := mustTicket(t, repos, doomed.ID, "gone")
	stays := mustTicket(t, repos, kept.ID, "stays")
	require.NoError(t, repos.Attachment.CreateAttachment(&ticket.Attachment{TicketID: gone.ID, FileName: "a.txt", ObjectKey: "tickets/a"}))

	keys, err := repos.Attachment.ListObjectKeysByType(doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tickets/a"}, keys)

	require.NoError(t, repos.TicketType.DeleteTicketType(doomed.ID))

	_, err = repos.Ticket.GetTicketByID(gone.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repos.Ticket.GetTicketByID(stays.ID)
	assert.NoError(t, err)

	atts, err := repos.Attachment.ListAttachmentsByTicket(gone.ID)
	require.NoError(t, err)
	assert.Empty(t, atts)

	assert.ErrorIs(t, repos.TicketType.DeleteTicketType(doomed.ID), gorm.ErrRecordNotFound)
}

func TestUserRepo(t *testing.T) {
	repos, _ := setupRepos(t)
	u := user.User{Pseudo: "jane", Email: "jane@example.com", Password: "hash", Role: user.RoleUser}
	require.NoError(t, repos.User.CreateUser(&u))

	dup := user.User{Pseudo: "jane2", Email: "jane@example.com", Password: "hash", Role: user.RoleUser}
	assert.Error(t, repos.User.CreateUser(&dup))

	byEmail, err := repos.User.GetUserByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, 0, byEmail.TokenVersion)

	require.NoError(t, repos.User.IncrementTokenVersion(u.ID))
	byID, err := repos.User.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, byID.TokenVersion)

	assert.ErrorIs(t, repos.User.IncrementTokenVersion("3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44"), gorm.ErrRecordNotFound)
}

func TestRefreshTokenRepo(t *testing.T) {
	repos, _ := setupRepos(t)
	now := time.Now()

	live := token.RefreshToken{TokenHash: token.Hash("live"), UserID: "3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44", ExpiresAt: now.Add(time.Hour)}
	stale := token.RefreshToken{TokenHash: token.Hash("stale"), UserID: live.UserID, ExpiresAt: now.Add(-time.Hour)}
	other := token.RefreshToken{TokenHash: token.Hash("other"), UserID: "9b0f1d8e-4a52-4d0b-8d1e-2c7f3a6b5e10", ExpiresAt: now.Add(time.Hour)}
	for _, rt := range []*token.RefreshToken{&live, &stale, &other} {
		require.NoError(t, repos.RefreshToken.SaveRefreshToken(rt))
	}

	ok, err := repos.RefreshToken.RefreshTokenExists(token.Hash("live"))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.RefreshToken.RefreshTokenExists(token.Hash("nope"))
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := repos.RefreshToken.DeleteExpiredRefreshTokens(now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	deleted, err := repos.RefreshToken.DeleteRefreshToken(token.Hash("live"))
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repos.RefreshToken.DeleteRefreshToken(token.Hash("live"))
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repos.RefreshToken.DeleteRefreshTokensByUser(other.UserID))
	ok, err = repos.RefreshToken.RefreshTokenExists(other.TokenHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuditRepo(t *testing.T) {
	repos, db := setupRepos(t)
	uid := "3f1c2a9e-8d4b-4c8e-9a51-0f6b2d7c1e44"

	require.NoError(t, repos.Audit.CreateAuditLog(&audit.AuditLog{UserID: &uid, Action: "create", ResourceType: "ticket", ResourceID: "t1"}))
	require.NoError(t, repos.Audit.CreateAuditLog(&audit.AuditLog{Action: "delete", ResourceType: "ticket_type", ResourceID: "tt1"}))
	old := audit.AuditLog{Action: "update", ResourceType: "ticket", ResourceID: "t0"}
	require.NoError(t, repos.Audit.CreateAuditLog(&old))
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().AddDate(0, 0, -90)).Error)

	rt := "ticket"
	logs, err := repos.Audit.GetAuditLogs(repository.AuditQueryParams{ResourceType: &rt})
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = repos.Audit.GetAuditLogs(repository.AuditQueryParams{UserID: &uid})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "t1", logs[0].ResourceID)

	page, err := repos.Audit.GetAuditLogs(repository.AuditQueryParams{ResourceType: &rt, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "t1", page[0].ResourceID)
	total, err := repos.Audit.CountAuditLogs(repository.AuditQueryParams{ResourceType: &rt, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	n, err := repos.Audit.DeleteOldAuditLogs(30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	repos, _ := setupRepos(t)
	boom := errors.New("boom")

	err := repos.ExecTx(func(tx *repository.Repos) error {
		tt := tickettype.TicketType{Name: "rolled back"}
		if err := tx.TicketType.CreateTicketType(&tt); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := repos.TicketType.CountTicketTypes()
	require.NoError(t, err)
	assert.Zero(t, n)
}
