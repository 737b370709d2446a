package services

import (
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/models"
)

// InterfaceEmailAddressService defines the email address service interface
type InterfaceEmailAddressService interface {
	GetEmailAddressesByPersonID(personID uint) ([]models.EmailAddress, error)
	CreateEmailAddress(email, kind string, personID uint) (*models.EmailAddress, error)
	DeleteEmailAddress(id uint) error
}

// EmailAddressService provides email-address-related operations
type EmailAddressService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmailAddressService creates a new email address service
func NewEmailAddressService(db *gorm.DB, cfg *config.Config) InterfaceEmailAddressService {
	return &EmailAddressService{
		DB:     db,
		Config: cfg,
	}
}

// GetEmailAddressesByPersonID returns all email addresses for a person,
// joined against persons
func (s *EmailAddressService) GetEmailAddressesByPersonID(personID uint) ([]models.EmailAddress, error) {
	var addresses []models.EmailAddress
	err := s.DB.
		Joins("JOIN persons ON persons.person_id = email_addresses.person_id").
		Where("email_addresses.person_id = ?", personID).
		Order("email_addresses.email_id").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateEmailAddress inserts a new email address for a person
func (s *EmailAddressService) CreateEmailAddress(email, kind string, personID uint) (*models.EmailAddress, error) {
	address := &models.EmailAddress{
		Email:    email,
		Type:     kind,
		PersonID: personID,
	}
	if err := s.DB.Create(address).Error; err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteEmailAddress removes an email address by ID; a missing ID is a no-op
func (s *EmailAddressService) DeleteEmailAddress(id uint) error {
	return s.DB.Delete(&models.EmailAddress{}, id).Error
}
