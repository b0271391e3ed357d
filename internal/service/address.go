package service

import (
	"context"
	"errors"

	"github.com/mrifkiw/contact-management/internal/apierr"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddressRequest is the payload for creating or replacing an address.
type AddressRequest struct {
	Street     string `json:"street" binding:"omitempty,max=200"`
	City       string `json:"city" binding:"omitempty,max=100"`
	Province   string `json:"province" binding:"omitempty,max=200"`
	Country    string `json:"country" binding:"required,max=200"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=10"`
}

// AddressService performs address CRUD with two-stage ownership resolution:
// the contact is resolved against the authenticated user first ("contact
// not found" on failure), then the address against that contact ("address
// not found"). The two messages are never conflated.
type AddressService interface {
	Create(ctx context.Context, user *models.User, contactID int64, req AddressRequest) (*models.Address, error)
	Get(ctx context.Context, user *models.User, contactID, addressID int64) (*models.Address, error)
	List(ctx context.Context, user *models.User, contactID int64) ([]models.Address, error)
	Update(ctx context.Context, user *models.User, contactID, addressID int64, req AddressRequest) (*models.Address, error)
	Delete(ctx context.Context, user *models.User, contactID, addressID int64) error
}

type addressService struct {
	contactRepo repository.ContactRepository
	addressRepo repository.AddressRepository
	log         *zap.SugaredLogger
}

// NewAddressService creates a new AddressService instance.
func NewAddressService(contactRepo repository.ContactRepository, addressRepo repository.AddressRepository, log *zap.SugaredLogger) AddressService {
	return &addressService{
		contactRepo: contactRepo,
		addressRepo: addressRepo,
		log:         log.With("service", "address"),
	}
}

func (s *addressService) Create(ctx context.Context, user *models.User, contactID int64, req AddressRequest) (*models.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	address := &models.Address{
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) Get(ctx context.Context, user *models.User, contactID, addressID int64) (*models.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	return s.resolveAddress(ctx, contact, addressID)
}

func (s *addressService) List(ctx context.Context, user *models.User, contactID int64) ([]models.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	return s.addressRepo.ListByContactID(ctx, contact.ID)
}

func (s *addressService) Update(ctx context.Context, user *models.User, contactID, addressID int64, req AddressRequest) (*models.Address, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	address, err := s.resolveAddress(ctx, contact, addressID)
	if err != nil {
		return nil, err
	}
	address.Street = req.Street
	address.City = req.City
	address.Province = req.Province
	address.Country = req.Country
	address.PostalCode = req.PostalCode
	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) Delete(ctx context.Context, user *models.User, contactID, addressID int64) error {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return err
	}
	address, err := s.resolveAddress(ctx, contact, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address)
}

func (s *addressService) resolveContact(ctx context.Context, user *models.User, contactID int64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndUserID(ctx, contactID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("contact not found")
		}
		return nil, err
	}
	return contact, nil
}

func (s *addressService) resolveAddress(ctx context.Context, contact *models.Contact, addressID int64) (*models.Address, error) {
	address, err := s.addressRepo.FindByIDAndContactID(ctx, addressID, contact.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("address not found")
		}
		return nil, err
	}
	return address, nil
}
