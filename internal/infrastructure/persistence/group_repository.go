package persistence

import (
	"context"
	"errors"

	"github.com/celengan/backend/internal/domain/budgeting"
	"github.com/celengan/backend/internal/domain/shared"
	"github.com/celengan/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGroupRepository implements GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormGroupRepository) WithTx(tx *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: tx}
}

// FindByID finds a group by its ID
func (r *GormGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*budgeting.Group, error) {
	var model models.GroupModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProfile finds all groups the profile is a member of, newest first
func (r *GormGroupRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]budgeting.Group, error) {
	var groupModels []models.GroupModel
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.profile_id = ?", profileID).
		Order("groups.created_at DESC").
		Find(&groupModels).Error
	if err != nil {
		return nil, err
	}

	groups := make([]budgeting.Group, len(groupModels))
	for i, model := range groupModels {
		groups[i] = *model.ToDomain()
	}
	return groups, nil
}

// Save creates or updates a group
func (r *GormGroupRepository) Save(ctx context.Context, group *budgeting.Group) error {
	model := models.GroupModelFromDomain(group)
	return r.db.WithContext(ctx).Save(model).Error
}

// AddMember adds a membership row.
// Returns ErrAlreadyExists if the profile is already a member.
func (r *GormGroupRepository) AddMember(ctx context.Context, membership *budgeting.Membership) error {
	model := models.MembershipModelFromDomain(membership)
	err := r.db.WithContext(ctx).Create(model).Error
	if isUniqueViolation(err) {
		return shared.ErrAlreadyExists
	}
	return err
}

// IsMember reports whether the profile belongs to the group
func (r *GormGroupRepository) IsMember(ctx context.Context, groupID, profileID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MembershipModel{}).
		Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindMembers lists group memberships joined with profile info, oldest first
func (r *GormGroupRepository) FindMembers(ctx context.Context, groupID uuid.UUID) ([]budgeting.GroupMember, error) {
	var rows []struct {
		models.MembershipModel
		Email     string
		FullName  string
		AvatarURL string
	}
	err := r.db.WithContext(ctx).
		Model(&models.MembershipModel{}).
		Select("group_members.*, profiles.email, profiles.full_name, profiles.avatar_url").
		Joins("JOIN profiles ON profiles.id = group_members.profile_id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]budgeting.GroupMember, len(rows))
	for i, row := range rows {
		members[i] = budgeting.GroupMember{
			ID:        row.ID,
			ProfileID: row.ProfileID,
			Email:     row.Email,
			FullName:  row.FullName,
			AvatarURL: row.AvatarURL,
			Role:      row.Role,
			JoinedAt:  row.CreatedAt,
		}
	}
	return members, nil
}

// CountByProfile counts the groups the profile is a member of
func (r *GormGroupRepository) CountByProfile(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MembershipModel{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	return count, err
}

var _ budgeting.GroupRepository = (*GormGroupRepository)(nil)
