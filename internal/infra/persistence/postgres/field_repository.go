package postgres

import (
	"context"

	"arenago/internal/domain/entity"
	"arenago/internal/domain/repository"
	"arenago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fieldRepository implements the repository.FieldRepository interface using GORM.
type fieldRepository struct {
	db *gorm.DB
}

// NewFieldRepository is the constructor for fieldRepository.
func NewFieldRepository(db *gorm.DB) repository.FieldRepository {
	return &fieldRepository{db: db}
}

// Create persists a new field.
func (repo *fieldRepository) Create(ctx context.Context, field *entity.Field) error {
	fieldM := fromFieldDomain(field)

	if err := repo.db.WithContext(ctx).Create(fieldM).Error; err != nil {
		return errors.Wrap(err, "failed to create field")
	}

	field.ID = fieldM.ID
	field.Area = entity.FieldArea(fieldM.Area)
	field.Status = entity.FieldStatus(fieldM.Status)
	field.CreatedAt = fieldM.CreatedAt
	field.UpdatedAt = fieldM.UpdatedAt

	return nil
}

// ListByCenter retrieves all fields of a center, newest first, with sports preloaded.
func (repo *fieldRepository) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*entity.Field, error) {
	var models []model.FieldModel

	if err := repo.db.WithContext(ctx).
		Preload("Sport").
		Where("center_id = ?", centerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list fields")
	}

	fields := make([]*entity.Field, 0, len(models))
	for i := range models {
		fields = append(fields, toFieldDomain(&models[i]))
	}

	return fields, nil
}

// Update applies the non-nil updates to a field owned by the center
// and returns the updated record.
func (repo *fieldRepository) Update(ctx context.Context, id, centerID uuid.UUID, updates *repository.FieldUpdates) (*entity.Field, error) {
	assignments := map[string]any{}
	if updates.Name != nil {
		assignments["name"] = *updates.Name
	}
	if updates.SportID != nil {
		assignments["sport_id"] = *updates.SportID
	}
	if updates.Area != nil {
		assignments["area"] = string(*updates.Area)
	}
	if updates.Status != nil {
		assignments["status"] = string(*updates.Status)
	}
	if updates.LocationNote != nil {
		assignments["location_note"] = *updates.LocationNote
	}
	if updates.ImageURL != nil {
		assignments["image_url"] = *updates.ImageURL
	}

	if len(assignments) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.FieldModel{}).
			Where("id = ? AND center_id = ?", id, centerID).
			Updates(assignments)
		if result.Error != nil {
			return nil, errors.Wrap(result.Error, "failed to update field")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrFieldNotFound
		}
	}

	var fieldM model.FieldModel
	if err := repo.db.WithContext(ctx).
		Preload("Sport").
		Where("id = ? AND center_id = ?", id, centerID).
		First(&fieldM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFieldNotFound
		}

		return nil, errors.Wrap(err, "failed to reload field")
	}

	return toFieldDomain(&fieldM), nil
}

// amenityRepository implements the repository.AmenityRepository interface using GORM.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{db: db}
}

// Create persists a new amenity.
func (repo *amenityRepository) Create(ctx context.Context, amenity *entity.Amenity) error {
	amenityM := fromAmenityDomain(amenity)

	if err := repo.db.WithContext(ctx).Create(amenityM).Error; err != nil {
		return errors.Wrap(err, "failed to create amenity")
	}

	amenity.ID = amenityM.ID
	amenity.IsActive = amenityM.IsActive
	amenity.CreatedAt = amenityM.CreatedAt

	return nil
}

// ListByCenter retrieves all amenities of a center ordered by name.
func (repo *amenityRepository) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]*entity.Amenity, error) {
	var models []model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Where("center_id = ?", centerID).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(models))
	for i := range models {
		amenities = append(amenities, toAmenityDomain(&models[i]))
	}

	return amenities, nil
}

// SetActive toggles the is_active flag on an amenity owned by the center
// and returns the updated record.
func (repo *amenityRepository) SetActive(ctx context.Context, id, centerID uuid.UUID, active bool) (*entity.Amenity, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AmenityModel{}).
		Where("id = ? AND center_id = ?", id, centerID).
		Update("is_active", active)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to toggle amenity")
	}
	if result.RowsAffected == 0 {
		// Updates that leave the flag unchanged also report zero rows.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.AmenityModel{}).
			Where("id = ? AND center_id = ?", id, centerID).
			Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check amenity ownership")
		}
		if count == 0 {
			return nil, repository.ErrAmenityNotFound
		}
	}

	var amenityM model.AmenityModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND center_id = ?", id, centerID).
		First(&amenityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to reload amenity")
	}

	return toAmenityDomain(&amenityM), nil
}

// Delete removes an amenity owned by the center.
func (repo *amenityRepository) Delete(ctx context.Context, id, centerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND center_id = ?", id, centerID).
		Delete(&model.AmenityModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// sportRepository implements the repository.SportRepository interface using GORM.
type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository is the constructor for sportRepository.
func NewSportRepository(db *gorm.DB) repository.SportRepository {
	return &sportRepository{db: db}
}

// List retrieves the full sports catalog ordered by name.
func (repo *sportRepository) List(ctx context.Context) ([]*entity.Sport, error) {
	var models []model.SportModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sports")
	}

	sports := make([]*entity.Sport, 0, len(models))
	for i := range models {
		sports = append(sports, toSportDomain(&models[i]))
	}

	return sports, nil
}

// --- Mapper Functions ---

func toFieldDomain(data *model.FieldModel) *entity.Field {
	if data == nil {
		return nil
	}

	field := &entity.Field{
		ID:        data.ID,
		CenterID:  data.CenterID,
		SportID:   data.SportID,
		Sport:     toSportDomain(data.Sport),
		Name:      data.Name,
		Area:      entity.FieldArea(data.Area),
		Status:    entity.FieldStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.LocationNote != nil {
		field.LocationNote = *data.LocationNote
	}
	if data.ImageURL != nil {
		field.ImageURL = *data.ImageURL
	}

	return field
}

func fromFieldDomain(field *entity.Field) *model.FieldModel {
	fieldM := &model.FieldModel{
		ID:       field.ID,
		CenterID: field.CenterID,
		SportID:  field.SportID,
		Name:     field.Name,
		Area:     string(field.Area),
		Status:   string(field.Status),
	}
	if field.LocationNote != "" {
		fieldM.LocationNote = &field.LocationNote
	}
	if field.ImageURL != "" {
		fieldM.ImageURL = &field.ImageURL
	}

	return fieldM
}

func toAmenityDomain(data *model.AmenityModel) *entity.Amenity {
	if data == nil {
		return nil
	}

	amenity := &entity.Amenity{
		ID:        data.ID,
		CenterID:  data.CenterID,
		Name:      data.Name,
		Slug:      data.Slug,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
	if data.Icon != nil {
		amenity.Icon = *data.Icon
	}

	return amenity
}

func fromAmenityDomain(amenity *entity.Amenity) *model.AmenityModel {
	amenityM := &model.AmenityModel{
		ID:       amenity.ID,
		CenterID: amenity.CenterID,
		Name:     amenity.Name,
		Slug:     amenity.Slug,
		IsActive: amenity.IsActive,
	}
	if amenity.Icon != "" {
		amenityM.Icon = &amenity.Icon
	}

	return amenityM
}

func toSportDomain(data *model.SportModel) *entity.Sport {
	if data == nil {
		return nil
	}

	return &entity.Sport{
		ID:   data.ID,
		Name: data.Name,
		Slug: data.Slug,
	}
}
