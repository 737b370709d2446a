package models

import (
	"strings"

	"gorm.io/gorm"

	"contacts-http-service/utils"
)

// StreetAddress represents one street address attached to a person.
type StreetAddress struct {
	ID       uint   `gorm:"column:street_id;primaryKey" json:"id"`
	Street   string `gorm:"column:street;type:varchar(100);not null" json:"street"`
	City     string `gorm:"column:city;type:varchar(50);not null" json:"city"`
	State    string `gorm:"column:state;type:varchar(2);not null" json:"state"`
	Postal   string `gorm:"column:postal;type:varchar(5);not null" json:"postal"`
	Type     string `gorm:"column:type;type:varchar(30)" json:"type"`
	PersonID uint   `gorm:"column:person_id;not null" json:"person_id"`
}

// TableName overrides the default table name
func (StreetAddress) TableName() string {
	return "street_addresses"
}

// AfterFind is a GORM hook that normalizes casing on read. Stored values keep
// their original casing; only what callers see is title-cased.
func (a *StreetAddress) AfterFind(tx *gorm.DB) error {
	a.Street = utils.CapitalizeWords(a.Street)
	a.City = utils.CapitalizeWords(a.City)
	a.State = strings.ToUpper(a.State)
	return nil
}

// Display renders the address as "street, city, state, postal (type)"
func (a StreetAddress) Display() string {
	return utils.DisplayStreetAddress(a.Street, a.City, a.State, a.Postal, a.Type)
}
