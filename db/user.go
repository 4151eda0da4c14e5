package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email" validate:"required,email,lte=255"`
	PasswordHash string `json:"-"`
	APIKey       string `gorm:"type:varchar(64);not null;unique" json:"api_key"`
	IsAdmin      bool   `json:"is_admin"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.APIKey == "" {
		u.APIKey = uuid.NewString()
	}
	return nil
}

func (d *DatabaseConnection) CreateUser(user *User) (*User, error) {
	result := d.db.Create(&user)
	if result.Error != nil {
		log.Error().Err(result.Error).Str("email", user.Email).Msg("User creation failed")
	}
	return user, result.Error
}

func (d *DatabaseConnection) GetUserByEmail(email string) (*User, error) {
	var user User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		log.Error().Err(err).Str("email", email).Msg("Unable to fetch user by email")
		return nil, err
	}
	return &user, nil
}

func (d *DatabaseConnection) GetUserByID(id uint) (*User, error) {
	var user User
	if err := d.db.Where("id = ?", id).First(&user).Error; err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Unable to fetch user by ID")
		return nil, err
	}
	return &user, nil
}
