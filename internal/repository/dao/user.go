package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const usersEmailConstraint = "uni_users_email"

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email string `gorm:"size:255;unique;not null"`
	Phone string `gorm:"size:15;not null"`

	Surname    string  `gorm:"column:fam;size:255;not null"`
	Name       string  `gorm:"size:255;not null"`
	Patronymic *string `gorm:"column:otc;size:255"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			err.ConstraintName == usersEmailConstraint {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// FirstOrInsert returns the user registered with user.Email, inserting it when
// absent. An existing user is returned unchanged, the contact fields of user
// are ignored. Must run inside a transaction: a concurrent insert of the same
// email is recovered through a savepoint.
func (d *UserDAO) FirstOrInsert(ctx context.Context, user User) (User, error) {
	found, err := d.FindByEmail(ctx, user.Email)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	if err = d.db.WithContext(ctx).SavePoint("insert_user").Error; err != nil {
		return User{}, err
	}

	user.ID = 0
	created, err := d.Insert(ctx, user)
	if errors.Is(err, ErrUserEmailExists) {
		if err = d.db.WithContext(ctx).RollbackTo("insert_user").Error; err != nil {
			return User{}, err
		}

		return d.FindByEmail(ctx, user.Email)
	}
	if err != nil {
		return User{}, err
	}

	return created, nil
}
