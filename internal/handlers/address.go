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

// AddressHandler handles the address routes nested under a contact.
type AddressHandler struct {
	addressService service.AddressService
	log            *zap.SugaredLogger
}

// NewAddressHandler creates a new AddressHandler instance.
func NewAddressHandler(addressService service.AddressService, log *zap.SugaredLogger) *AddressHandler {
	return &AddressHandler{addressService: addressService, log: log.With("handler", "address")}
}

// AddressResponse is the address resource shape.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

func newAddressResponse(address *models.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// Create handles POST /api/contacts/:contactId/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	contactID, err := contactParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req service.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	address, err := h.addressService.Create(c.Request.Context(), middleware.CurrentUser(c), contactID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusCreated, newAddressResponse(address))
}

// Get handles GET /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Get(c *gin.Context) {
	contactID, addressID, err := addressParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	address, err := h.addressService.Get(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, newAddressResponse(address))
}

// List handles GET /api/contacts/:contactId/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	contactID, err := contactParam(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	addresses, err := h.addressService.List(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	responses := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, newAddressResponse(&addresses[i]))
	}
	respondData(c, http.StatusOK, responses)
}

// Update handles PUT /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Update(c *gin.Context) {
	contactID, addressID, err := addressParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	var req service.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, bindingError(err))
		return
	}
	address, err := h.addressService.Update(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, newAddressResponse(address))
}

// Delete handles DELETE /api/contacts/:contactId/addresses/:addressId.
func (h *AddressHandler) Delete(c *gin.Context) {
	contactID, addressID, err := addressParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if err := h.addressService.Delete(c.Request.Context(), middleware.CurrentUser(c), contactID, addressID); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, true)
}

// addressParams parses both path ids. The contact id is validated first so
// that a malformed contact id reports "contact not found", never "address
// not found".
func addressParams(c *gin.Context) (contactID, addressID int64, err error) {
	contactID, err = contactParam(c)
	if err != nil {
		return 0, 0, err
	}
	addressID, parseErr := strconv.ParseInt(c.Param("addressId"), 10, 64)
	if parseErr != nil {
		return 0, 0, apierr.NotFound("address not found")
	}
	return contactID, addressID, nil
}
