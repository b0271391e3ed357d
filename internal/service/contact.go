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

// ContactRequest is the payload for creating or replacing a contact.
type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// SearchContactsRequest holds the optional search filters and page request.
type SearchContactsRequest struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// PageMeta describes the returned page of a search result.
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	Size        int   `json:"size"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// ContactService performs contact CRUD scoped to the owning user. Any
// lookup of a contact that does not exist or belongs to another user fails
// with the same "contact not found" error.
type ContactService interface {
	Create(ctx context.Context, user *models.User, req ContactRequest) (*models.Contact, error)
	Get(ctx context.Context, user *models.User, contactID int64) (*models.Contact, error)
	Update(ctx context.Context, user *models.User, contactID int64, req ContactRequest) (*models.Contact, error)
	Delete(ctx context.Context, user *models.User, contactID int64) error
	Search(ctx context.Context, user *models.User, req SearchContactsRequest) ([]models.Contact, *PageMeta, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	log         *zap.SugaredLogger
}

// NewContactService creates a new ContactService instance.
func NewContactService(contactRepo repository.ContactRepository, log *zap.SugaredLogger) ContactService {
	return &contactService{contactRepo: contactRepo, log: log.With("service", "contact")}
}

func (s *contactService) Create(ctx context.Context, user *models.User, req ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, user *models.User, contactID int64) (*models.Contact, error) {
	return s.resolveOwned(ctx, user, contactID)
}

func (s *contactService) Update(ctx context.Context, user *models.User, contactID int64, req ContactRequest) (*models.Contact, error) {
	contact, err := s.resolveOwned(ctx, user, contactID)
	if err != nil {
		return nil, err
	}
	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.Phone = req.Phone
	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, user *models.User, contactID int64) error {
	contact, err := s.resolveOwned(ctx, user, contactID)
	if err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, contact)
}

func (s *contactService) Search(ctx context.Context, user *models.User, req SearchContactsRequest) ([]models.Contact, *PageMeta, error) {
	filter := repository.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = 10
	}
	contacts, total, err := s.contactRepo.Search(ctx, user.ID, filter)
	if err != nil {
		return nil, nil, err
	}
	meta := &PageMeta{
		CurrentPage: filter.Page,
		Size:        filter.Size,
		Total:       total,
		LastPage:    lastPage(total, filter.Size),
	}
	return contacts, meta, nil
}

// resolveOwned fetches a contact filtered by both id and the authenticated
// user's id. A contact owned by another user is indistinguishable from a
// missing one.
func (s *contactService) resolveOwned(ctx context.Context, user *models.User, contactID int64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndUserID(ctx, contactID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("contact not found")
		}
		return nil, err
	}
	return contact, nil
}

func lastPage(total int64, size int) int {
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}
