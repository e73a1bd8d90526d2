package controllers

import (
	"log"

	"github.com/GivenCloud/Hotel-Manager/dto"
	"github.com/GivenCloud/Hotel-Manager/models"
	"github.com/GivenCloud/Hotel-Manager/response"
	"github.com/GivenCloud/Hotel-Manager/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssociationController handles the plain hotel<->service and guest<->service
// links. No capacity or date rules apply here; the response is the bare
// roster after the mutation.
type AssociationController struct {
	DB *gorm.DB
}

func NewAssociationController(db *gorm.DB) *AssociationController {
	return &AssociationController{DB: db}
}

func (ac *AssociationController) loadServices(ids []uint) ([]models.Service, bool) {
	var svcs []models.Service
	if err := ac.DB.Find(&svcs, ids).Error; err != nil {
		return nil, false
	}
	return svcs, len(svcs) == len(ids)
}

// AddServicesToHotel attaches the given services to a hotel
func (ac *AssociationController) AddServicesToHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ServiceIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "service_id is required")
		return
	}
	if err := validator.ValidateIDList(req.ServiceIDs); err != nil {
		respondBookingError(c, err)
		return
	}

	var hotel models.Hotel
	if err := ac.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFoundWithMessage(c, "hotel not found")
		return
	}

	svcs, allFound := ac.loadServices(req.ServiceIDs)
	if !allFound {
		response.NotFoundWithMessage(c, "service not found")
		return
	}

	if err := ac.DB.Model(&hotel).Association("Services").Append(&svcs); err != nil {
		log.Printf("Error attaching services to hotel %d: %v", hotelID, err)
		response.ServerError(c)
		return
	}

	ac.respondHotelServices(c, &hotel)
}

// RemoveServicesFromHotel detaches the given services from a hotel.
// Unlinked ids are silent no-ops.
func (ac *AssociationController) RemoveServicesFromHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ServiceIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "service_id is required")
		return
	}
	if err := validator.ValidateIDList(req.ServiceIDs); err != nil {
		respondBookingError(c, err)
		return
	}

	var hotel models.Hotel
	if err := ac.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFoundWithMessage(c, "hotel not found")
		return
	}

	var svcs []models.Service
	if err := ac.DB.Find(&svcs, req.ServiceIDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := ac.DB.Model(&hotel).Association("Services").Delete(&svcs); err != nil {
		log.Printf("Error detaching services from hotel %d: %v", hotelID, err)
		response.ServerError(c)
		return
	}

	ac.respondHotelServices(c, &hotel)
}

// AddServicesToGuest attaches the given services to a guest
func (ac *AssociationController) AddServicesToGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ServiceIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "service_id is required")
		return
	}
	if err := validator.ValidateIDList(req.ServiceIDs); err != nil {
		respondBookingError(c, err)
		return
	}

	var guest models.Guest
	if err := ac.DB.First(&guest, guestID).Error; err != nil {
		response.NotFoundWithMessage(c, "guest not found")
		return
	}

	svcs, allFound := ac.loadServices(req.ServiceIDs)
	if !allFound {
		response.NotFoundWithMessage(c, "service not found")
		return
	}

	if err := ac.DB.Model(&guest).Association("Services").Append(&svcs); err != nil {
		log.Printf("Error attaching services to guest %d: %v", guestID, err)
		response.ServerError(c)
		return
	}

	ac.respondGuestServices(c, &guest)
}

// RemoveServicesFromGuest detaches the given services from a guest
func (ac *AssociationController) RemoveServicesFromGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ServiceIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "service_id is required")
		return
	}
	if err := validator.ValidateIDList(req.ServiceIDs); err != nil {
		respondBookingError(c, err)
		return
	}

	var guest models.Guest
	if err := ac.DB.First(&guest, guestID).Error; err != nil {
		response.NotFoundWithMessage(c, "guest not found")
		return
	}

	var svcs []models.Service
	if err := ac.DB.Find(&svcs, req.ServiceIDs).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := ac.DB.Model(&guest).Association("Services").Delete(&svcs); err != nil {
		log.Printf("Error detaching services from guest %d: %v", guestID, err)
		response.ServerError(c)
		return
	}

	ac.respondGuestServices(c, &guest)
}

func (ac *AssociationController) respondHotelServices(c *gin.Context, hotel *models.Hotel) {
	var linked []models.Service
	if err := ac.DB.Model(hotel).Association("Services").Find(&linked); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toServiceResponses(linked))
}

func (ac *AssociationController) respondGuestServices(c *gin.Context, guest *models.Guest) {
	var linked []models.Service
	if err := ac.DB.Model(guest).Association("Services").Find(&linked); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, toServiceResponses(linked))
}

func toServiceResponses(svcs []models.Service) []dto.ServiceResponse {
	out := make([]dto.ServiceResponse, 0, len(svcs))
	for _, s := range svcs {
		out = append(out, dto.ServiceResponse{
			ID:         s.ID,
			Name:       s.Name,
			Price:      s.Price,
			CategoryID: s.CategoryID,
		})
	}
	return out
}
