//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailIntakeService_Record_CreatesNotification(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	email, err := services.EmailIntakeService.Record(context.Background(), &mail.InboundEmail{
		ProjectID:      &project.ID,
		From:           "site.agent@contractor.example",
		Subject:        "Notification of compensation event - unforeseen services",
		Body:           "We hereby notify a compensation event under clause 61.3.",
		Classification: mail.ClassificationCompensationEvent,
		Confidence:     0.92,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, email.ID)
	require.NotNil(t, email.ProcessedAt)

	list, err := services.NotificationService.List(context.Background(), &notifications.NotificationQuery{
		Kind: notifications.KindEmailClassified,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, email.ID, list[0].SourceID)
	assert.Contains(t, list[0].Title, mail.ClassificationCompensationEvent)
}

func TestEmailIntakeService_Record_WithoutProject(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	email, err := services.EmailIntakeService.Record(context.Background(), &mail.InboundEmail{
		From:           "accounts@supplier.example",
		Subject:        "Invoice INV-2026-0834",
		Classification: mail.ClassificationInvoice,
		Confidence:     0.88,
	})
	require.NoError(t, err)
	assert.Nil(t, email.ProjectID)
}

func TestEmailIntakeService_List_FilterByClassification(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.EmailIntakeService.Record(context.Background(), &mail.InboundEmail{
		From:           "site.agent@contractor.example",
		Subject:        "Potential delay on piling works",
		Classification: mail.ClassificationEarlyWarning,
		Confidence:     0.81,
	})
	require.NoError(t, err)

	_, err = services.EmailIntakeService.Record(context.Background(), &mail.InboundEmail{
		From:           "pm@client.example",
		Subject:        "Weekly progress meeting minutes",
		Classification: mail.ClassificationGeneral,
		Confidence:     0.97,
	})
	require.NoError(t, err)

	list, err := services.EmailIntakeService.List(context.Background(), &mail.EmailQuery{
		Classification: mail.ClassificationEarlyWarning,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Potential delay on piling works", list[0].Subject)
}

func TestNotificationService_MarkRead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.EmailIntakeService.Record(context.Background(), &mail.InboundEmail{
		From:           "accounts@supplier.example",
		Subject:        "Invoice INV-2026-0834",
		Classification: mail.ClassificationInvoice,
	})
	require.NoError(t, err)

	list, err := services.NotificationService.List(context.Background(), &notifications.NotificationQuery{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, services.NotificationService.MarkRead(context.Background(), list[0].ID))

	// Marking again is a no-op
	require.NoError(t, services.NotificationService.MarkRead(context.Background(), list[0].ID))

	unread, err := services.NotificationService.List(context.Background(), &notifications.NotificationQuery{UnreadOnly: true})
	require.NoError(t, err)
	assert.Empty(t, unread)
}
