package services

import (
	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/models"
)

// InterfacePhoneNumberService defines the phone number service interface
type InterfacePhoneNumberService interface {
	GetPhoneNumbersByPersonID(personID uint) ([]models.PhoneNumber, error)
	CreatePhoneNumber(areaCode, number int, kind string, personID uint) (*models.PhoneNumber, error)
	DeletePhoneNumber(id uint) error
}

// PhoneNumberService provides phone-number-related operations
type PhoneNumberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPhoneNumberService creates a new phone number service
func NewPhoneNumberService(db *gorm.DB, cfg *config.Config) InterfacePhoneNumberService {
	return &PhoneNumberService{
		DB:     db,
		Config: cfg,
	}
}

// GetPhoneNumbersByPersonID returns all phone numbers for a person. The join
// against persons guarantees the owner still exists at read time.
func (s *PhoneNumberService) GetPhoneNumbersByPersonID(personID uint) ([]models.PhoneNumber, error) {
	var numbers []models.PhoneNumber
	err := s.DB.
		Joins("JOIN persons ON persons.person_id = phone_numbers.person_id").
		Where("phone_numbers.person_id = ?", personID).
		Order("phone_numbers.phone_id").
		Find(&numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// CreatePhoneNumber inserts a new phone number for a person
func (s *PhoneNumberService) CreatePhoneNumber(areaCode, number int, kind string, personID uint) (*models.PhoneNumber, error) {
	phoneNumber := &models.PhoneNumber{
		AreaCode: areaCode,
		Number:   number,
		Type:     kind,
		PersonID: personID,
	}
	if err := s.DB.Create(phoneNumber).Error; err != nil {
		return nil, err
	}
	return phoneNumber, nil
}

// DeletePhoneNumber removes a phone number by ID; a missing ID is a no-op
func (s *PhoneNumberService) DeletePhoneNumber(id uint) error {
	return s.DB.Delete(&models.PhoneNumber{}, id).Error
}
