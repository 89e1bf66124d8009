package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a habit query to rows belonging to the given user.
// Missing and not-owned rows become indistinguishable, which is what the
// API's uniform 404 behavior relies on.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
