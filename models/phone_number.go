package models

import (
	"contacts-http-service/utils"
)

// PhoneNumber represents one phone number attached to a person. The area
// code is stored as a 3-digit integer and the number as a 7-digit integer.
type PhoneNumber struct {
	ID       uint   `gorm:"column:phone_id;primaryKey" json:"id"`
	AreaCode int    `gorm:"column:area_code;not null" json:"area_code"`
	Number   int    `gorm:"column:number;not null" json:"number"`
	Type     string `gorm:"column:type;type:varchar(30)" json:"type"`
	PersonID uint   `gorm:"column:person_id;not null" json:"person_id"`
}

// TableName overrides the default table name
func (PhoneNumber) TableName() string {
	return "phone_numbers"
}

// Display renders the number as "(AAA) NNN-NNNN (type)"
func (p PhoneNumber) Display() string {
	return utils.DisplayPhoneNumber(p.AreaCode, p.Number, p.Type)
}
