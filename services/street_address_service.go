package services

import (
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/models"
)

// InterfaceStreetAddressService defines the street address service interface
type InterfaceStreetAddressService interface {
	GetStreetAddressesByPersonID(personID uint) ([]models.StreetAddress, error)
	CreateStreetAddress(street, city, state, postal, kind string, personID uint) (*models.StreetAddress, error)
	DeleteStreetAddress(id uint) error
}

// StreetAddressService provides street-address-related operations
type StreetAddressService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStreetAddressService creates a new street address service
func NewStreetAddressService(db *gorm.DB, cfg *config.Config) InterfaceStreetAddressService {
	return &StreetAddressService{
		DB:     db,
		Config: cfg,
	}
}

// GetStreetAddressesByPersonID returns all street addresses for a person,
// joined against persons. Title-casing of street/city and upper-casing of the
// state code happen in the model's AfterFind hook, so stored values keep
// their original casing.
func (s *StreetAddressService) GetStreetAddressesByPersonID(personID uint) ([]models.StreetAddress, error) {
	var addresses []models.StreetAddress
	err := s.DB.
		Joins("JOIN persons ON persons.person_id = street_addresses.person_id").
		Where("street_addresses.person_id = ?", personID).
		Order("street_addresses.street_id").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateStreetAddress inserts a new street address for a person
func (s *StreetAddressService) CreateStreetAddress(street, city, state, postal, kind string, personID uint) (*models.StreetAddress, error) {
	address := &models.StreetAddress{
		Street:   street,
		City:     city,
		State:    state,
		Postal:   postal,
		Type:     kind,
		PersonID: personID,
	}
	if err := s.DB.Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteStreetAddress removes a street address by ID; a missing ID is a no-op
func (s *StreetAddressService) DeleteStreetAddress(id uint) error {
	return s.DB.Delete(&models.StreetAddress{}, id).Error
}
