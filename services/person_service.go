package services

import (
	"errors"

	"gorm.io/gorm"

	"contacts-http-service/config"
	"contacts-http-service/models"
)

// ErrPersonNotFound is returned when a person ID matches no row.
var ErrPersonNotFound = errors.New("person not found")

// InterfacePersonService defines the person service interface
type InterfacePersonService interface {
	GetAllPersons() ([]models.Person, error)
	GetPersonByID(id uint) (*models.Person, error)
	CreatePerson(name string) (*models.Person, error)
	DeletePerson(id uint) error
}

// PersonService provides person-related operations
type PersonService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPersonService creates a new person service
func NewPersonService(db *gorm.DB, cfg *config.Config) InterfacePersonService {
	return &PersonService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllPersons returns every person, ordered by ID
func (s *PersonService) GetAllPersons() ([]models.Person, error) {
	var persons []models.Person
	if err := s.DB.Order("person_id").Find(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

// GetPersonByID returns a single person by ID
func (s *PersonService) GetPersonByID(id uint) (*models.Person, error) {
	var person models.Person
	if err := s.DB.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

// CreatePerson inserts a new person. Validation happens in the handlers;
// the service trusts its caller.
func (s *PersonService) CreatePerson(name string) (*models.Person, error) {
	person := &models.Person{Name: name}
	if err := s.DB.Create(person).Error; err != nil {
		return nil, err
	}
	return person, nil
}

// DeletePerson removes a person and all of its contact methods in one
// transaction. Deleting a nonexistent ID is a no-op, not an error.
func (s *PersonService) DeletePerson(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.PhoneNumber{}).Error; err != nil {
			return err
		}
		if err := tx.Where("person_id = ?", id).Delete(&models.StreetAddress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("person_id = ?", id).Delete(&models.EmailAddress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Person{}, id).Error
	})
}
