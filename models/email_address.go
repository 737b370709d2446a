package models

import (
	"contacts-http-service/utils"
)

// EmailAddress represents one email address attached to a person.
type EmailAddress struct {
	ID       uint   `gorm:"column:email_id;primaryKey" json:"id"`
	Email    string `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Type     string `gorm:"column:type;type:varchar(30)" json:"type"`
	PersonID uint   `gorm:"column:person_id;not null" json:"person_id"`
}

// TableName overrides the default table name
func (EmailAddress) TableName() string {
	return "email_addresses"
}

// Display renders the address as "email (type)"
func (e EmailAddress) Display() string {
	return utils.DisplayEmailAddress(e.Email, e.Type)
}
