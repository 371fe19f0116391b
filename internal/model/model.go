package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates the table for key, or every table when key is empty.
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "Folder":
		return db.AutoMigrate(&Folder{})
	case "Note":
		return db.AutoMigrate(&Note{})
	case "":
		return db.AutoMigrate(&Folder{}, &Note{})
	}
	return nil
}
