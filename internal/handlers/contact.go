package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/apierr"
	"github.com/mrifkiw/contact-management/internal/middleware"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/service"
	"go.uber.org/zap"
)

// ContactHandler handles contact CRUD and search requests.
type ContactHandler struct {
	contactService service.ContactService
	log            *zap.SugaredLogger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(contactService service.ContactService, log *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{contactService: contactService, log: log.With("handler", "contact")}
}

// ContactResponse is the contact resource shape.
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func newContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	contact, err := h.contactService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, newContactResponse(contact))
}

// Get handles GET /api/contacts/:contactId.
func (h *ContactHandler) Get(c *gin.Context) {
	contactID, err := contactParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	contact, err := h.contactService.Get(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, newContactResponse(contact))
}

// Update handles PUT /api/contacts/:contactId.
func (h *ContactHandler) Update(c *gin.Context) {
	contactID, err := contactParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	contact, err := h.contactService.Update(c.Request.Context(), middleware.CurrentUser(c), contactID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, newContactResponse(contact))
}

// Delete handles DELETE /api/contacts/:contactId.
func (h *ContactHandler) Delete(c *gin.Context) {
	contactID, err := contactParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.contactService.Delete(c.Request.Context(), middleware.CurrentUser(c), contactID); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, true)
}

// Search handles GET /api/contacts with optional name/email/phone filters
// and page/size pagination.
func (h *ContactHandler) Search(c *gin.Context) {
	req := service.SearchContactsRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  queryInt(c, "page", 1),
		Size:  queryInt(c, "size", 10),
	}
	contacts, meta, err := h.contactService.Search(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, newContactResponse(&contacts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": responses, "meta": meta})
}

// contactParam parses the contact id path parameter. A non-numeric id can
// never match a row, so it reports the same "contact not found" as a miss.
func contactParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("contactId"), 10, 64)
	if err != nil {
		return 0, apierr.NotFound("contact not found")
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
