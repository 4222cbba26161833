package models

import (
	"time"
)

// UserDB represents a row of the "user" table
type UserDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	Email     string     `json:"email" db:"email"`           // Unique email
	Password  string     `json:"-" db:"password"`            // Bcrypt hash, never serialized
	FullName  string     `json:"full_name" db:"full_name"`   // First and last name
	Phone     *string    `json:"phone" db:"phone"`           // Optional phone number
	CreatedOn time.Time  `json:"create_on" db:"create_on"`   // Creation timestamp
	UpdatedOn *time.Time `json:"updated_on" db:"updated_on"` // Last modification, nil until the row is updated
}

// UserClothesDB is the user row together with the clothes linked through users_clothes.
// It is loaded by gorm and only carries what the read projection needs.
type UserClothesDB struct {
	ID       int64       `gorm:"column:id;primaryKey"`
	FullName string      `gorm:"column:full_name"`
	Clothes  []ClothesDB `gorm:"many2many:users_clothes;joinForeignKey:UserID;joinReferences:ClothesID"`
}

// TableName binds UserClothesDB to the "user" table.
func (UserClothesDB) TableName() string {
	return "user"
}
