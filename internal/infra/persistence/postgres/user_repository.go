package postgres

import (
	"context"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves the accounts for the given IDs.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by IDs")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindByFirebaseUID retrieves a single account by its identity-provider subject id.
func (repo *userRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("firebase_uid = ?", firebaseUID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Two concurrent first-contact requests can race on the unique index.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing account.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":      userM.Name,
			"role":      userM.Role,
			"address":   userM.Address,
			"avatar":    userM.Avatar,
			"longitude": userM.Longitude,
			"latitude":  userM.Latitude,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List retrieves accounts newest-first, optionally filtered by role.
func (repo *userRepository) List(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if role != nil {
		query = query.Where("role = ?", role.String())
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Count returns the total number of accounts.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountByRole returns the number of accounts holding the given role.
func (repo *userRepository) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", role.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users by role")
	}

	return count, nil
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          user.ID,
		FirebaseUID: user.FirebaseUID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role.String(),
		Address:     user.Address,
		Avatar:      user.Avatar,
		Longitude:   user.Location.Lon(),
		Latitude:    user.Location.Lat(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:          userM.ID,
		FirebaseUID: userM.FirebaseUID,
		Email:       userM.Email,
		Name:        userM.Name,
		Role:        entity.Role(userM.Role),
		Address:     userM.Address,
		Avatar:      userM.Avatar,
		Location:    orb.Point{userM.Longitude, userM.Latitude},
		CreatedAt:   userM.CreatedAt,
		UpdatedAt:   userM.UpdatedAt,
	}
}
