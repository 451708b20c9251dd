// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// centerRepository implements the repository.CenterRepository interface using GORM.
type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository is the constructor for centerRepository.
func NewCenterRepository(db *gorm.DB) repository.CenterRepository {
	return &centerRepository{db: db}
}

// Create persists a new center entity to the database.
func (repo *centerRepository) Create(ctx context.Context, center *entity.Center) error {
	centerM := fromCenterDomain(center)

	if err := repo.db.WithContext(ctx).Create(centerM).Error; err != nil {
		return errors.Wrap(err, "failed to create center")
	}

	// Reflect generated values back onto the entity.
	center.ID = centerM.ID
	center.Status = entity.CenterStatus(centerM.Status)
	center.CreatedAt = centerM.CreatedAt
	center.UpdatedAt = centerM.UpdatedAt

	return nil
}

// FindByID retrieves a single center by its unique ID, preloading coordinates.
func (repo *centerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Center, error) {
	var centerM model.CenterModel

	if err := repo.db.WithContext(ctx).
		Preload("Coordinates").
		Where("id = ?", id).
		First(&centerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find center by id")
	}

	return toCenterDomain(&centerM), nil
}

// UpdateStatus sets the lifecycle status of a center and returns the updated record.
func (repo *centerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CenterStatus) (*entity.Center, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CenterModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update center status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCenterNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdateAddress overwrites the postal address fields of a center.
func (repo *centerRepository) UpdateAddress(ctx context.Context, id uuid.UUID, addr *entity.Center) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CenterModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"address":      addr.Address,
			"city":         addr.City,
			"state":        addr.State,
			"postal_code":  addr.PostalCode,
			"country":      addr.Country,
			"country_code": addr.CountryCode,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update center address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCenterNotFound
	}

	return nil
}

// UpsertCoordinates writes the geocoded location for a center. A center that
// already references a coordinates row gets it updated in place; otherwise a
// row is inserted and back-linked onto the center.
func (repo *centerRepository) UpsertCoordinates(ctx context.Context, centerID uuid.UUID, coords *entity.Coordinates) error {
	var centerM model.CenterModel
	if err := repo.db.WithContext(ctx).
		Select("id", "coordinates_id").
		Where("id = ?", centerID).
		First(&centerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrCenterNotFound
		}

		return errors.Wrap(err, "failed to load center for coordinates upsert")
	}

	coordsM := fromCoordinatesDomain(coords)

	if centerM.CoordinatesID != nil {
		coordsM.ID = *centerM.CoordinatesID
		if err := repo.db.WithContext(ctx).
			Model(&model.CoordinatesModel{}).
			Where("id = ?", coordsM.ID).
			Updates(map[string]any{
				"latitude":     coordsM.Latitude,
				"longitude":    coordsM.Longitude,
				"source":       coordsM.Source,
				"geom":         coordsM.Geom,
				"service_area": coordsM.ServiceArea,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to update coordinates")
		}

		coords.ID = coordsM.ID

		return nil
	}

	if err := repo.db.WithContext(ctx).Create(coordsM).Error; err != nil {
		return errors.Wrap(err, "failed to insert coordinates")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CenterModel{}).
		Where("id = ?", centerID).
		Update("coordinates_id", coordsM.ID).Error; err != nil {
		return errors.Wrap(err, "failed to link coordinates to center")
	}

	coords.ID = coordsM.ID

	return nil
}

// ListByStatus retrieves centers in a given lifecycle status, newest first.
func (repo *centerRepository) ListByStatus(ctx context.Context, status entity.CenterStatus, limit, offset int) ([]*entity.Center, error) {
	var centerModels []*model.CenterModel

	query := repo.db.WithContext(ctx).
		Preload("Coordinates").
		Where("status = ?", status.String()).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&centerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list centers by status")
	}

	centers := make([]*entity.Center, 0, len(centerModels))
	for _, centerM := range centerModels {
		centers = append(centers, toCenterDomain(centerM))
	}

	return centers, nil
}

// --- Mapper Functions ---

func toCenterDomain(data *model.CenterModel) *entity.Center {
	if data == nil {
		return nil
	}

	return &entity.Center{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		Phone:              data.Phone,
		Address:            data.Address,
		City:               data.City,
		State:              data.State,
		Country:            data.Country,
		CountryCode:        data.CountryCode,
		PostalCode:         data.PostalCode,
		BusinessID:         data.BusinessID,
		ContactPerson:      data.ContactPerson,
		ContactPersonPhone: data.ContactPersonPhone,
		Status:             entity.CenterStatus(data.Status),
		CreatedBy:          data.CreatedBy,
		CoordinatesID:      data.CoordinatesID,
		Coordinates:        toCoordinatesDomain(data.Coordinates),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromCenterDomain(center *entity.Center) *model.CenterModel {
	return &model.CenterModel{
		ID:                 center.ID,
		Name:               center.Name,
		Email:              center.Email,
		Phone:              center.Phone,
		Address:            center.Address,
		City:               center.City,
		State:              center.State,
		Country:            center.Country,
		CountryCode:        center.CountryCode,
		PostalCode:         center.PostalCode,
		BusinessID:         center.BusinessID,
		ContactPerson:      center.ContactPerson,
		ContactPersonPhone: center.ContactPersonPhone,
		Status:             center.Status.String(),
		CreatedBy:          center.CreatedBy,
		CoordinatesID:      center.CoordinatesID,
	}
}

func toCoordinatesDomain(data *model.CoordinatesModel) *entity.Coordinates {
	if data == nil {
		return nil
	}

	serviceArea := ""
	if data.ServiceArea != nil {
		serviceArea = *data.ServiceArea
	}

	return &entity.Coordinates{
		ID:             data.ID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Source:         data.Source,
		Geom:           data.Geom,
		ServiceAreaWKT: serviceArea,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCoordinatesDomain(coords *entity.Coordinates) *model.CoordinatesModel {
	var serviceArea *string
	if coords.ServiceAreaWKT != "" {
		serviceArea = &coords.ServiceAreaWKT
	}

	return &model.CoordinatesModel{
		ID:          coords.ID,
		Latitude:    coords.Latitude,
		Longitude:   coords.Longitude,
		Source:      coords.Source,
		Geom:        coords.Geom,
		ServiceArea: serviceArea,
	}
}
