package dao

import "gorm.io/gorm"

// ResetTables empties every pereval table and restarts the id sequences.
func ResetTables(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE pereval_images, p_images, pereval_added, coords, users RESTART IDENTITY CASCADE").Error
}
