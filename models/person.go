package models

// Person is the root contact entity; it owns zero or more of each
// contact-method record.
type Person struct {
	ID   uint   `gorm:"column:person_id;primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(100);not null" json:"name"`

	// Relations
	PhoneNumbers    []PhoneNumber   `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"phone_numbers,omitempty"`
	StreetAddresses []StreetAddress `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"street_addresses,omitempty"`
	EmailAddresses  []EmailAddress  `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"email_addresses,omitempty"`
}

// TableName overrides the default table name
func (Person) TableName() string {
	return "persons"
}
