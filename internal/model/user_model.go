package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"` // stored lowercase
	Password  string    `gorm:"type:varchar(191);not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
