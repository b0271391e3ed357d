package repository

import (
	"context"
	"fmt"

	"github.com/mrifkiw/contact-management/internal/models"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for address data operations.
// Lookups are scoped by the owning contact's id; the contact itself must
// already have been resolved through the caller's ownership check.
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	FindByIDAndContactID(ctx context.Context, id, contactID int64) (*models.Address, error)
	ListByContactID(ctx context.Context, contactID int64) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, address *models.Address) error
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates a new AddressRepository instance.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *addressRepository) FindByIDAndContactID(ctx context.Context, id, contactID int64) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).
		Where("id = ? AND contact_id = ?", id, contactID).
		First(&address).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find address %d for contact %d: %w", id, contactID, err)
	}
	return &address, nil
}

func (r *addressRepository) ListByContactID(ctx context.Context, contactID int64) ([]models.Address, error) {
	addresses := []models.Address{}
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("id").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for contact %d: %w", contactID, err)
	}
	return addresses, nil
}

func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Save(address).Error; err != nil {
		return fmt.Errorf("failed to update address id %d: %w", address.ID, err)
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Delete(address).Error; err != nil {
		return fmt.Errorf("failed to delete address id %d: %w", address.ID, err)
	}
	return nil
}
