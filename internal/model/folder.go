package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TableNameFolder = "folder"

// Folder mapped from table <folder>
type Folder struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:idx_folder_user_name,priority:1" json:"userId"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_folder_user_name,priority:2" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName Folder's table name
func (*Folder) TableName() string {
	return TableNameFolder
}

// BeforeCreate assigns a new opaque id when none is set.
func (m *Folder) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
