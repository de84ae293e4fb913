//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	notification := CreateTestNotification(t, notifications.KindEarlyWarningRaised)
	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), notification))

	fetched, err := ctx.NotificationRepo.GetByID(context.Background(), notification.ID)
	require.NoError(t, err)
	assert.Equal(t, notification.Title, fetched.Title)
	assert.False(t, fetched.Read)
	assert.Nil(t, fetched.UserID)
}

func TestNotificationSqliteRepository_List_UnreadOnly(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	unread := CreateTestNotification(t, notifications.KindEarlyWarningRaised)
	read := CreateTestNotification(t, notifications.KindEmailClassified)
	read.Read = true

	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), unread))
	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), read))

	query := &notifications.NotificationQuery{UnreadOnly: true}
	list, err := ctx.NotificationRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, unread.ID, list[0].ID)
}

func TestNotificationSqliteRepository_List_UserSeesOwnAndBroadcast(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	userID := uuid.NewString()
	otherUserID := uuid.NewString()

	broadcast := CreateTestNotification(t, notifications.KindEarlyWarningRaised)

	personal := CreateTestNotification(t, notifications.KindCompensationEventRaised)
	personal.UserID = &userID

	foreign := CreateTestNotification(t, notifications.KindCompensationEventRaised)
	foreign.UserID = &otherUserID

	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), broadcast))
	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), personal))
	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), foreign))

	query := &notifications.NotificationQuery{UserID: userID}
	list, err := ctx.NotificationRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, n := range list {
		if n.UserID != nil {
			assert.Equal(t, userID, *n.UserID)
		}
	}
}

func TestNotificationSqliteRepository_MarkReadRoundTrip(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	notification := CreateTestNotification(t, notifications.KindEmailClassified)
	require.NoError(t, ctx.NotificationRepo.Create(context.Background(), notification))

	notification.Read = true
	require.NoError(t, ctx.NotificationRepo.UpdateByID(context.Background(), notification))

	updated, err := ctx.NotificationRepo.GetByID(context.Background(), notification.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)
}

func TestEmailSqliteRepository_CreateAndList(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	ce := CreateTestEmail(t, &project.ID, mail.ClassificationCompensationEvent)
	general := CreateTestEmail(t, nil, mail.ClassificationGeneral)
	general.Subject = "Weekly progress meeting minutes"

	require.NoError(t, ctx.EmailRepo.Create(context.Background(), ce))
	require.NoError(t, ctx.EmailRepo.Create(context.Background(), general))

	query := &mail.EmailQuery{Classification: mail.ClassificationCompensationEvent}
	list, err := ctx.EmailRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, ce.ID, list[0].ID)
	require.NotNil(t, list[0].ProjectID)
	assert.Equal(t, project.ID, *list[0].ProjectID)
}

func TestEmailSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	email, err := ctx.EmailRepo.GetByID(context.Background(), uuid.NewString())
	assert.Nil(t, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
