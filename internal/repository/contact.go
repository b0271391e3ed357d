package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrifkiw/contact-management/internal/models"
	"gorm.io/gorm"
)

// ContactFilter holds the optional search filters and the requested page.
// Empty filter strings are ignored; the rest are combined with AND.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// ContactRepository defines the interface for contact data operations.
// Every lookup is scoped by the owning user's id in the query predicate so
// that rows owned by other users are indistinguishable from missing rows.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByIDAndUserID(ctx context.Context, id, userID int64) (*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, contact *models.Contact) error
	Search(ctx context.Context, userID int64, filter ContactFilter) ([]models.Contact, int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository instance.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *contactRepository) FindByIDAndUserID(ctx context.Context, id, userID int64) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&contact).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find contact %d for user %d: %w", id, userID, err)
	}
	return &contact, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Save(contact).Error; err != nil {
		return fmt.Errorf("failed to update contact id %d: %w", contact.ID, err)
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Delete(contact).Error; err != nil {
		return fmt.Errorf("failed to delete contact id %d: %w", contact.ID, err)
	}
	return nil
}

func (r *contactRepository) Search(ctx context.Context, userID int64, filter ContactFilter) ([]models.Contact, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("user_id = ?", userID)

	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}
	if filter.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", containsPattern(filter.Email))
	}
	if filter.Phone != "" {
		query = query.Where("LOWER(phone) LIKE ?", containsPattern(filter.Phone))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts for user %d: %w", userID, err)
	}

	contacts := []models.Contact{}
	err := query.
		Order("id").
		Limit(filter.Size).
		Offset((filter.Page - 1) * filter.Size).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search contacts for user %d: %w", userID, err)
	}
	return contacts, total, nil
}

// containsPattern builds a case-insensitive substring LIKE pattern.
func containsPattern(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
