package application_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/Sahindou/ifrit-ticket/internal/application"
	"github.com/Sahindou/ifrit-ticket/internal/domain/tickettype"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
	"github.com/Sahindou/ifrit-ticket/internal/repository/mock"
	"github.com/Sahindou/ifrit-ticket/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTicketTypeMocks(t *testing.T, store application.ObjectStore) (*application.TicketTypeService,
	*mock.MockTicketTypeRepo,
	*mock.MockAttachmentRepo,
	*fakePublisher,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockType := mock.NewMockTicketTypeRepo(ctrl)
	mockAttachment := mock.NewMockAttachmentRepo(ctrl)
	repos := &repository.Repos{
		TicketType: mockType,
		Attachment: mockAttachment,
		Audit:      mock.NewMockAuditRepo(ctrl),
	}

	events := &fakePublisher{}
	svc := application.NewTicketTypeService(repos, events, store)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	silenceAudit()
	return svc, mockType, mockAttachment, events, c
}

func TestTicketTypeService_CRUD(t *testing.T) {
	t.Run("create trims the name", func(t *testing.T) {
		svc, mockType, _, events, c := setupTicketTypeMocks(t, nil)

		mockType.EXPECT().CreateTicketType(gomock.Any()).DoAndReturn(func(tt *tickettype.TicketType) error {
			assert.Equal(t, "incident", tt.Name)
			tt.ID = typeID
			return nil
		})

		got, err := svc.CreateTicketType(c, tickettype.CreateTicketTypeInput{Name: "  incident "})
		require.NoError(t, err)
		assert.Equal(t, typeID, got.ID)
		assert.Equal(t, []recordedEvent{{Event: application.EventTicketTypeCreated, ID: typeID}}, events.Events())
	})

	t.Run("update not found", func(t *testing.T) {
		svc, mockType, _, _, c := setupTicketTypeMocks(t, nil)

		mockType.EXPECT().GetTicketTypeByID(typeID).Return(tickettype.TicketType{}, gorm.ErrRecordNotFound)
		_, err := svc.UpdateTicketType(c, typeID, tickettype.UpdateTicketTypeInput{Name: ptr("x")})
		assert.ErrorIs(t, err, application.ErrTicketTypeNotFound)
	})

	t.Run("update of a type deleted meanwhile", func(t *testing.T) {
		svc, mockType, _, events, c := setupTicketTypeMocks(t, nil)

		mockType.EXPECT().GetTicketTypeByID(typeID).Return(tickettype.TicketType{ID: typeID, Name: "old"}, nil)
		mockType.EXPECT().SaveTicketType(gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := svc.UpdateTicketType(c, typeID, tickettype.UpdateTicketTypeInput{Name: ptr("new")})
		assert.ErrorIs(t, err, application.ErrTicketTypeNotFound)
		assert.Empty(t, events.Events())
	})

	t.Run("update renames", func(t *testing.T) {
		svc, mockType, _, _, c := setupTicketTypeMocks(t, nil)

		mockType.EXPECT().GetTicketTypeByID(typeID).Return(tickettype.TicketType{ID: typeID, Name: "old"}, nil)
		mockType.EXPECT().SaveTicketType(&tickettype.TicketType{ID: typeID, Name: "new"}).Return(nil)

		got, err := svc.UpdateTicketType(c, typeID, tickettype.UpdateTicketTypeInput{Name: ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", got.Name)
	})

	t.Run("delete removes objects of cascaded tickets", func(t *testing.T) {
		store := newFakeStore()
		svc, mockType, mockAttachment, events, c := setupTicketTypeMocks(t, store)

		mockType.EXPECT().GetTicketTypeByID(typeID).Return(tickettype.TicketType{ID: typeID, Name: "incident"}, nil)
		mockAttachment.EXPECT().ListObjectKeysByType(typeID).Return([]string{"tickets/x"}, nil)
		mockType.EXPECT().DeleteTicketType(typeID).Return(nil)

		require.NoError(t, svc.DeleteTicketType(c, typeID))
		assert.Equal(t, []string{"tickets/x"}, store.removed)
		assert.Equal(t, []recordedEvent{{Event: application.EventTicketTypeDeleted, ID: typeID}}, events.Events())
	})

	t.Run("delete not found", func(t *testing.T) {
		svc, mockType, _, _, c := setupTicketTypeMocks(t, nil)

		mockType.EXPECT().GetTicketTypeByID(typeID).Return(tickettype.TicketType{}, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.DeleteTicketType(c, typeID), application.ErrTicketTypeNotFound)
	})
}

func TestTicketTypeService_Seed(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	svc := application.NewTicketTypeService(repos, nil, nil)

	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticket_types:\n  - incident\n  - amélioration\n  - Incident\n  - \"  \"\n"), 0o600))

	n, err := svc.SeedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A populated table is left untouched.
	n, err = svc.SeedFromFile(path)
	require.NoError(t, err)
	assert.Zero(t, n)

	types, err := svc.ListTicketTypes()
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "amélioration", types[0].Name)
	assert.Equal(t, "incident", types[1].Name)

	n, err = svc.SeedFromFile(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
