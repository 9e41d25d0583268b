package editor_test

import (
	"context"
	"errors"
	"testing"

	mockdashboard "github.com/KirkDiggler/dream-bot-discord/internal/clients/dashboard/mock"
	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
	"github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors"
	mockeditors "github.com/KirkDiggler/dream-bot-discord/internal/repositories/editors/mocks"
	"github.com/KirkDiggler/dream-bot-discord/internal/services/editor"
	"github.com/KirkDiggler/dream-bot-discord/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFailingService(t *testing.T) (editor.Service, *mockeditors.MockRepository, *mockdashboard.MockClient) {
	ctrl := gomock.NewController(t)
	repo := mockeditors.NewMockRepository(ctrl)
	client := mockdashboard.NewMockClient(ctrl)

	service := editor.NewService(&editor.ServiceConfig{
		Client:     client,
		Repository: repo,
		Catalog:    testutils.CreateTestCatalog(),
	})
	return service, repo, client
}

func TestOverview_RepositoryDown(t *testing.T) {
	service, repo, _ := newFailingService(t)
	repo.EXPECT().GetByUser(gomock.Any(), testUser).Return(nil, errors.New("redis down"))

	_, err := service.Overview(context.Background(), testUser)
	require.Error(t, err)
	assert.False(t, dnderr.IsNotFound(err))
	assert.ErrorContains(t, err, "failed to load editor for user user-1")
}

func TestOverview_NoRecordIsNotFound(t *testing.T) {
	service, repo, _ := newFailingService(t)
	repo.EXPECT().GetByUser(gomock.Any(), testUser).Return(nil, dnderr.NotFound("no editor"))

	_, err := service.Overview(context.Background(), testUser)
	assert.True(t, dnderr.IsNotFound(err))
	assert.Equal(t, editor.MsgNoEditor, dnderr.UserMessage(err))
}

func TestLogout_DeleteFails(t *testing.T) {
	service, repo, client := newFailingService(t)
	record := &editors.Record{ID: "ed-1", UserID: testUser, DashboardSession: string(testSession)}

	repo.EXPECT().GetByUser(gomock.Any(), testUser).Return(record, nil)
	client.EXPECT().Logout(gomock.Any(), testSession).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "ed-1").Return(errors.New("redis down"))

	err := service.Logout(context.Background(), testUser)
	assert.ErrorContains(t, err, "failed to drop editor for user user-1")
}

func TestLogout_AlreadyGoneIsFine(t *testing.T) {
	service, repo, client := newFailingService(t)
	record := &editors.Record{ID: "ed-1", UserID: testUser, DashboardSession: string(testSession)}

	repo.EXPECT().GetByUser(gomock.Any(), testUser).Return(record, nil)
	client.EXPECT().Logout(gomock.Any(), testSession).Return(errors.New("timeout"))
	repo.EXPECT().Delete(gomock.Any(), "ed-1").Return(dnderr.NotFound("editor ed-1 not found"))

	assert.NoError(t, service.Logout(context.Background(), testUser))
}
