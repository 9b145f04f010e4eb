package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type PImage struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:255;not null"`
	Img   []byte `gorm:"type:bytea;not null"`
}

// PerevalImage links a pereval to one of its images.
type PerevalImage struct {
	PerevalID uint      `gorm:"primaryKey;autoIncrement:false"`
	ImageID   uint      `gorm:"primaryKey;autoIncrement:false"`
	DateAdded time.Time `gorm:"type:timestamp;not null;default:now()"`
	Image     PImage    `gorm:"foreignKey:ImageID"`
}

func attachImages(ctx context.Context, tx *gorm.DB, perevalID uint, images []PImage) error {
	for _, img := range images {
		img.ID = 0
		if err := tx.WithContext(ctx).Create(&img).Error; err != nil {
			return err
		}

		link := PerevalImage{
			PerevalID: perevalID,
			ImageID:   img.ID,
		}
		if err := tx.WithContext(ctx).Omit("Image").Create(&link).Error; err != nil {
			return err
		}
	}

	return nil
}

func detachImages(ctx context.Context, tx *gorm.DB, perevalID uint) error {
	return tx.WithContext(ctx).Where("pereval_id = ?", perevalID).Delete(&PerevalImage{}).Error
}
