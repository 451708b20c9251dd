package postgres

import (
	"context"
	"time"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository
// interface using GORM. The notifications table is optional; every method
// translates the undefined-table error into ErrNotificationStoreUnavailable
// so callers can degrade instead of failing.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a single notification row.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUndefinedTable(err) {
			return repository.ErrNotificationStoreUnavailable
		}

		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// CreateBatch persists one row per recipient in a single insert.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		models = append(models, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		if isUndefinedTable(err) {
			return repository.ErrNotificationStoreUnavailable
		}

		return errors.Wrap(err, "failed to create notifications")
	}

	for i, notificationM := range models {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// ListByRecipient retrieves the newest notifications addressed to one account.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var models []model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("recipient_user_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrNotificationStoreUnavailable
		}

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, toNotificationDomain(&models[i]))
	}

	return notifications, nil
}

// MarkRead sets read_at on a single notification owned by the recipient.
// A row that is already read keeps its original read_at; a row that does
// not exist or belongs to someone else yields ErrNotificationNotFound.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_user_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", time.Now())

	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return repository.ErrNotificationStoreUnavailable
		}

		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		// Distinguish the idempotent already-read case from a miss.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ? AND recipient_user_id = ?", id, recipientID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification ownership")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// MarkAllRead sets read_at on every unread notification of the recipient.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_user_id = ? AND read_at IS NULL", recipientID).
		Update("read_at", time.Now()).Error; err != nil {
		if isUndefinedTable(err) {
			return repository.ErrNotificationStoreUnavailable
		}

		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:              data.ID,
		RecipientUserID: data.RecipientUserID,
		Type:            data.Type,
		Title:           data.Title,
		Message:         data.Message,
		Payload:         data.Payload,
		ReadAt:          data.ReadAt,
		CreatedAt:       data.CreatedAt,
	}
}

func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:              notification.ID,
		RecipientUserID: notification.RecipientUserID,
		Type:            notification.Type,
		Title:           notification.Title,
		Message:         notification.Message,
		Payload:         notification.Payload,
		ReadAt:          notification.ReadAt,
	}
}
