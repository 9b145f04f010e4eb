package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPerevalNotFound         = errors.New("pereval not found")
	ErrPerevalNotEditable      = errors.New("pereval is not editable")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type Status int

const (
	StatusNew      Status = 1
	StatusPending  Status = 2
	StatusAccepted Status = 3
	StatusRejected Status = 4
)

type Coord struct {
	ID        uint    `gorm:"primaryKey"`
	Latitude  float64 `gorm:"type:numeric(9,6);not null"`
	Longitude float64 `gorm:"type:numeric(9,6);not null"`
	Height    int     `gorm:"not null"`
}

type Pereval struct {
	ID          uint      `gorm:"primaryKey"`
	BeautyTitle string    `gorm:"size:255;not null"`
	Title       string    `gorm:"size:255;not null"`
	OtherTitles *string   `gorm:"size:255"`
	Connect     *string   `gorm:"size:255"`
	AddTime     time.Time `gorm:"type:timestamp;not null;default:now()"`

	CoordID uint  `gorm:"not null"`
	Coords  Coord `gorm:"foreignKey:CoordID"`
	UserID  uint  `gorm:"not null;index"`
	User    User  `gorm:"foreignKey:UserID"`

	LevelWinter *string `gorm:"size:6"`
	LevelSummer *string `gorm:"size:6"`
	LevelAutumn *string `gorm:"size:6"`
	LevelSpring *string `gorm:"size:6"`

	Status Status         `gorm:"not null;default:1"`
	Images []PerevalImage `gorm:"foreignKey:PerevalID"`
}

func (Pereval) TableName() string {
	return "pereval_added"
}

type Level struct {
	Winter *string
	Summer *string
	Autumn *string
	Spring *string
}

func (l Level) columns() map[string]interface{} {
	return map[string]interface{}{
		"level_winter": l.Winter,
		"level_summer": l.Summer,
		"level_autumn": l.Autumn,
		"level_spring": l.Spring,
	}
}

// PerevalPatch lists the changes of an update; nil members are left untouched.
type PerevalPatch struct {
	Columns map[string]interface{}
	Coords  *Coord
	Level   *Level
	Images  *[]PImage
}

type PerevalDAO struct {
	db *gorm.DB
}

func NewPerevalDAO(db *gorm.DB) *PerevalDAO {
	return &PerevalDAO{
		db: db,
	}
}

// Insert stores a pereval with its creator, coordinates and images in one
// transaction and returns its id. The creator is looked up by email and only
// inserted when unknown. The status is always StatusNew.
func (d *PerevalDAO) Insert(ctx context.Context, pereval Pereval, images []PImage) (uint, error) {
	var id uint

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := NewUserDAO(tx).FirstOrInsert(ctx, pereval.User)
		if err != nil {
			return err
		}

		coord := pereval.Coords
		coord.ID = 0
		if err = tx.Create(&coord).Error; err != nil {
			return err
		}

		row := pereval
		row.ID = 0
		row.UserID = user.ID
		row.CoordID = coord.ID
		row.Status = StatusNew
		if err = tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}

		if err = attachImages(ctx, tx, row.ID, images); err != nil {
			return err
		}

		id = row.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (d *PerevalDAO) hydrated(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Joins("User").
		Joins("Coords").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_added, image_id")
		}).
		Preload("Images.Image")
}

func (d *PerevalDAO) FindByID(ctx context.Context, id uint) (Pereval, error) {
	var pereval Pereval

	result := d.hydrated(ctx).Where("pereval_added.id = ?", id).First(&pereval)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Pereval{}, ErrPerevalNotFound
		}

		return Pereval{}, result.Error
	}

	return pereval, nil
}

func (d *PerevalDAO) FindByUserID(ctx context.Context, userID uint) ([]Pereval, error) {
	var perevals []Pereval

	result := d.hydrated(ctx).
		Where("pereval_added.user_id = ?", userID).
		Order("pereval_added.id").
		Find(&perevals)
	if result.Error != nil {
		return nil, result.Error
	}

	return perevals, nil
}

// lockForUpdate reads the mutable state of a pereval and holds a row lock on it
// until tx ends, so a concurrent status change waits for us or we wait for it.
func lockForUpdate(tx *gorm.DB, id uint) (Pereval, error) {
	var row Pereval

	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "status", "coord_id").
		Where("id = ?", id).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Pereval{}, ErrPerevalNotFound
		}

		return Pereval{}, result.Error
	}

	return row, nil
}

// Update applies patch to a pereval still in StatusNew. It returns the status
// read under lock; ErrPerevalNotEditable means nothing was written.
func (d *PerevalDAO) Update(ctx context.Context, id uint, patch PerevalPatch) (Status, error) {
	var status Status

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockForUpdate(tx, id)
		if err != nil {
			return err
		}

		status = row.Status
		if row.Status != StatusNew {
			return ErrPerevalNotEditable
		}

		if len(patch.Columns) > 0 {
			result := tx.Model(&Pereval{}).
				Where("id = ? AND status = ?", id, StatusNew).
				Updates(patch.Columns)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrPerevalNotEditable
			}
		}

		if patch.Coords != nil {
			err = tx.Model(&Coord{}).Where("id = ?", row.CoordID).Updates(map[string]interface{}{
				"latitude":  patch.Coords.Latitude,
				"longitude": patch.Coords.Longitude,
				"height":    patch.Coords.Height,
			}).Error
			if err != nil {
				return err
			}
		}

		if patch.Level != nil {
			err = tx.Model(&Pereval{}).Where("id = ?", id).Updates(patch.Level.columns()).Error
			if err != nil {
				return err
			}
		}

		if patch.Images != nil {
			if err = detachImages(ctx, tx, id); err != nil {
				return err
			}
			if err = attachImages(ctx, tx, id, *patch.Images); err != nil {
				return err
			}
		}

		return nil
	})

	return status, err
}

// UpdateStatus moves a pereval to status to when allowed reports the move from
// its current status as legal. It returns the previous status.
func (d *PerevalDAO) UpdateStatus(ctx context.Context, id uint, to Status, allowed func(from Status) bool) (Status, error) {
	var from Status

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockForUpdate(tx, id)
		if err != nil {
			return err
		}

		from = row.Status
		if !allowed(from) {
			return ErrInvalidStatusTransition
		}

		return tx.Model(&Pereval{}).Where("id = ?", id).Update("status", to).Error
	})

	return from, err
}
