package models

import "gorm.io/gorm"

// Roles attachable to a user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Address holds the postal address embedded in a User record.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// User represents an account. Password holds a bcrypt hash, never plaintext;
// GoogleID holds the provider subject id for OAuth sign-ups. Either may be
// empty depending on the sign-up flow. Username and email are unique at the
// store level.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string  `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"omitempty,min=3,max=100"`
	Fullname   string  `json:"fullname" validate:"required"`
	Email      string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string  `json:"password,omitempty" gorm:"type:varchar(255)"`
	GoogleID   string  `json:"googleId,omitempty" gorm:"type:varchar(255)"`
	Gender     string  `json:"gender" validate:"required,oneof=Male Female Other"`
	DOB        string  `json:"dob" validate:"required,datetime=2006-01-02"`
	Phone      string  `json:"phone" validate:"required"`
	Address    Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Role       string  `json:"role" gorm:"type:varchar(10);default:user" validate:"omitempty,oneof=admin user"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Sanitize strips credential material before the record is returned to a
// client.
func (u *User) Sanitize() {
	u.Password = ""
	u.GoogleID = ""
}
