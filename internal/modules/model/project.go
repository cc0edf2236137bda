package model

import (
	"github.com/google/uuid"
)

type Project struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`

	// Project <-> User: weak back-reference, deleting a project must not
	// delete its users (project_id is nulled out instead).
	Users []User `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
