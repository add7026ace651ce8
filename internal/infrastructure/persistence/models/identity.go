package models

import (
	"time"

	"github.com/celengan/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// ProfileModel is the persistence model for the Profile domain entity.
// The primary key equals the external identity provider's user ID.
type ProfileModel struct {
	BaseModel
	Email                 string     `gorm:"type:varchar(320);not null;uniqueIndex:idx_profiles_email"`
	FullName              string     `gorm:"type:varchar(200)"`
	AvatarURL             string     `gorm:"type:text"`
	MonthlyIncomeCents    *int64     `gorm:"type:bigint"`
	OnboardingCompleted   bool       `gorm:"not null;default:false"`
	OnboardingCompletedAt *time.Time `gorm:""`
	ActiveGroupID         *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile entity.
func (m *ProfileModel) ToDomain() *identity.Profile {
	return &identity.Profile{
		BaseEntity:            m.BaseModel.ToDomain(),
		Email:                 m.Email,
		FullName:              m.FullName,
		AvatarURL:             m.AvatarURL,
		MonthlyIncomeCents:    m.MonthlyIncomeCents,
		OnboardingCompleted:   m.OnboardingCompleted,
		OnboardingCompletedAt: m.OnboardingCompletedAt,
		ActiveGroupID:         m.ActiveGroupID,
	}
}

// FromDomain populates the persistence model from a domain Profile entity.
func (m *ProfileModel) FromDomain(p *identity.Profile) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Email = p.Email
	m.FullName = p.FullName
	m.AvatarURL = p.AvatarURL
	m.MonthlyIncomeCents = p.MonthlyIncomeCents
	m.OnboardingCompleted = p.OnboardingCompleted
	m.OnboardingCompletedAt = p.OnboardingCompletedAt
	m.ActiveGroupID = p.ActiveGroupID
}

// ProfileModelFromDomain creates a new persistence model from a domain Profile entity.
func ProfileModelFromDomain(p *identity.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}
