package postgres

import (
	"context"

	"arenago/internal/domain/entity"
	domainerrors "arenago/internal/domain/errors"
	"arenago/internal/domain/repository"
	"arenago/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a profile by the owning account's ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile row.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Upsert inserts the profile or, on conflict on the primary key, overwrites
// its role, center link and active flag in place.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "center_id", "is_active", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateRole sets the role sync copy on an existing profile row.
func (repo *profileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("role", role.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindActiveReviewerIDs lists the account IDs of active admin and superadmin profiles.
func (repo *profileRepository) FindActiveReviewerIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("role IN ? AND is_active = ?", []string{entity.RoleAdmin.String(), entity.RoleSuperadmin.String()}, true).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviewer profiles")
	}

	return ids, nil
}

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByID retrieves an account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account by its login email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		DisplayName: data.DisplayName,
		Email:       data.Email,
		Phone:       data.Phone,
		Role:        entity.Role(data.Role),
		CenterID:    data.CenterID,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		Phone:       profile.Phone,
		Role:        profile.Role.String(),
		CenterID:    profile.CenterID,
		IsActive:    profile.IsActive,
	}
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
	}
}
