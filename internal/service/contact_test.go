package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// =============================================================================
// Mock ContactRepository
// =============================================================================

type mockContactRepository struct {
	createFunc            func(ctx context.Context, contact *models.Contact) error
	findByIDAndUserIDFunc func(ctx context.Context, id, userID int64) (*models.Contact, error)
	updateFunc            func(ctx context.Context, contact *models.Contact) error
	deleteFunc            func(ctx context.Context, contact *models.Contact) error
	searchFunc            func(ctx context.Context, userID int64, filter repository.ContactFilter) ([]models.Contact, int64, error)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, contact)
	}
	return errors.New("not implemented")
}

func (m *mockContactRepository) FindByIDAndUserID(ctx context.Context, id, userID int64) (*models.Contact, error) {
	if m.findByIDAndUserIDFunc != nil {
		return m.findByIDAndUserIDFunc(ctx, id, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, contact)
	}
	return errors.New("not implemented")
}

func (m *mockContactRepository) Delete(ctx context.Context, contact *models.Contact) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, contact)
	}
	return errors.New("not implemented")
}

func (m *mockContactRepository) Search(ctx context.Context, userID int64, filter repository.ContactFilter) ([]models.Contact, int64, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, userID, filter)
	}
	return nil, 0, errors.New("not implemented")
}

// ownedContacts backs FindByIDAndUserID with a fixed row set so ownership
// scoping can be asserted against the query predicate.
func ownedContacts(rows ...models.Contact) func(ctx context.Context, id, userID int64) (*models.Contact, error) {
	return func(ctx context.Context, id, userID int64) (*models.Contact, error) {
		for i := range rows {
			if rows[i].ID == id && rows[i].UserID == userID {
				row := rows[i]
				return &row, nil
			}
		}
		return nil, fmt.Errorf("not found: %w", gorm.ErrRecordNotFound)
	}
}

func newTestContactService(repo *mockContactRepository) ContactService {
	return NewContactService(repo, zap.NewNop().Sugar())
}

// =============================================================================
// Tests
// =============================================================================

func TestContactCreate_SetsOwner(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, contact *models.Contact) error {
			contact.ID = 10
			return nil
		},
	}
	svc := newTestContactService(repo)

	contact, err := svc.Create(context.Background(), &models.User{ID: 3}, ContactRequest{
		FirstName: "wi", LastName: "wid", Email: "wid@gmail.com", Phone: "0812",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.UserID != 3 {
		t.Errorf("expected user_id 3, got %d", contact.UserID)
	}
	if contact.FirstName != "wi" || contact.LastName != "wid" || contact.Email != "wid@gmail.com" || contact.Phone != "0812" {
		t.Errorf("fields must round-trip unchanged, got %+v", contact)
	}
}

func TestContactGet_OtherUsersRowLooksMissing(t *testing.T) {
	repo := &mockContactRepository{
		findByIDAndUserIDFunc: ownedContacts(models.Contact{ID: 5, UserID: 1, FirstName: "wi"}),
	}
	svc := newTestContactService(repo)

	owner := &models.User{ID: 1}
	stranger := &models.User{ID: 2}

	if _, err := svc.Get(context.Background(), owner, 5); err != nil {
		t.Fatalf("owner must see the contact: %v", err)
	}

	_, missingErr := svc.Get(context.Background(), owner, 999)
	_, foreignErr := svc.Get(context.Background(), stranger, 5)

	missing := asAPIError(t, missingErr)
	foreign := asAPIError(t, foreignErr)
	if missing.Status != http.StatusNotFound || foreign.Status != http.StatusNotFound {
		t.Errorf("expected 404/404, got %d/%d", missing.Status, foreign.Status)
	}
	if missing.Error() != foreign.Error() {
		t.Errorf("missing and foreign rows must be indistinguishable: %q vs %q", missing.Error(), foreign.Error())
	}
	if got := foreign.Fields["message"]; len(got) != 1 || got[0] != "contact not found" {
		t.Errorf("unexpected message: %v", got)
	}
}

func TestContactUpdate_ReplacesFields(t *testing.T) {
	var saved *models.Contact
	repo := &mockContactRepository{
		findByIDAndUserIDFunc: ownedContacts(models.Contact{ID: 5, UserID: 1, FirstName: "old", Email: "old@x.com"}),
		updateFunc: func(ctx context.Context, contact *models.Contact) error {
			saved = contact
			return nil
		},
	}
	svc := newTestContactService(repo)

	_, err := svc.Update(context.Background(), &models.User{ID: 1}, 5, ContactRequest{FirstName: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.FirstName != "new" {
		t.Fatalf("expected updated first name, got %+v", saved)
	}
	if saved.Email != "" {
		t.Errorf("a full replace must clear omitted fields, got %q", saved.Email)
	}
}

func TestContactDelete_ChecksOwnershipFirst(t *testing.T) {
	repo := &mockContactRepository{
		findByIDAndUserIDFunc: ownedContacts(models.Contact{ID: 5, UserID: 1}),
		deleteFunc: func(ctx context.Context, contact *models.Contact) error {
			return nil
		},
	}
	svc := newTestContactService(repo)

	if err := svc.Delete(context.Background(), &models.User{ID: 1}, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := svc.Delete(context.Background(), &models.User{ID: 2}, 5)
	if apiErr := asAPIError(t, err); apiErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.Status)
	}
}

func TestContactSearch_DefaultsAndMeta(t *testing.T) {
	var gotFilter repository.ContactFilter
	repo := &mockContactRepository{
		searchFunc: func(ctx context.Context, userID int64, filter repository.ContactFilter) ([]models.Contact, int64, error) {
			gotFilter = filter
			return []models.Contact{{ID: 6}, {ID: 7}, {ID: 8}, {ID: 9}, {ID: 10}}, 20, nil
		},
	}
	svc := newTestContactService(repo)

	contacts, meta, err := svc.Search(context.Background(), &models.User{ID: 1}, SearchContactsRequest{Page: 2, Size: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 5 {
		t.Errorf("expected 5 rows, got %d", len(contacts))
	}
	if meta.Total != 20 || meta.CurrentPage != 2 || meta.Size != 5 || meta.LastPage != 4 {
		t.Errorf("unexpected meta: %+v", meta)
	}
	if gotFilter.Page != 2 || gotFilter.Size != 5 {
		t.Errorf("filter not passed through: %+v", gotFilter)
	}
}

func TestContactSearch_ZeroPageFallsBackToDefaults(t *testing.T) {
	repo := &mockContactRepository{
		searchFunc: func(ctx context.Context, userID int64, filter repository.ContactFilter) ([]models.Contact, int64, error) {
			if filter.Page != 1 || filter.Size != 10 {
				t.Errorf("expected defaults page=1 size=10, got %+v", filter)
			}
			return []models.Contact{}, 0, nil
		},
	}
	svc := newTestContactService(repo)

	contacts, meta, err := svc.Search(context.Background(), &models.User{ID: 1}, SearchContactsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 0 || meta.Total != 0 {
		t.Errorf("expected empty result, got %d rows total %d", len(contacts), meta.Total)
	}
	if meta.LastPage != 1 {
		t.Errorf("last page is at least 1, got %d", meta.LastPage)
	}
}
