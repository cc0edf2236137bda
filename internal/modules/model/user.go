package model

import (
	"time"

	"github.com/google/uuid"
)

// EnvType classifies the deployment environment a bot account targets.
type EnvType string

const (
	EnvProd    EnvType = "prod"
	EnvPreprod EnvType = "preprod"
	EnvStage   EnvType = "stage"
)

// DomainType classifies the traffic class of a bot account.
type DomainType string

const (
	DomainCanary  DomainType = "canary"
	DomainRegular DomainType = "regular"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Login string `gorm:"type:varchar(255);uniqueIndex;not null" json:"login"`
	// Password holds the SHA-256 hex digest of the plaintext, never the
	// plaintext itself. Excluded from every response body.
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	ProjectID *uuid.UUID `gorm:"type:uuid" json:"project_id"`

	Env    EnvType    `gorm:"type:varchar(16);not null" json:"env"`
	Domain DomainType `gorm:"type:varchar(16);not null" json:"domain"`

	// Locktime is the advisory lock flag: nil means unlocked, any value
	// means locked and records when the lock was taken. No holder identity
	// and no expiry are tracked.
	Locktime *time.Time `gorm:"type:timestamptz" json:"locktime"`

	// User <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }
