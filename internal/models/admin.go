package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"admin_id"`
	Username     string `gorm:"size:100;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Email        string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hashes PasswordHash when it is still plaintext
// (no bcrypt prefix), so callers can set the raw password directly.
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if len(a.PasswordHash) >= 4 && a.PasswordHash[:4] == "$2a$" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashed)
	return nil
}

func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
