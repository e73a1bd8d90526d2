package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/GivenCloud/Hotel-Manager/config"
	"github.com/GivenCloud/Hotel-Manager/constants"
	"github.com/GivenCloud/Hotel-Manager/dto"
	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/GivenCloud/Hotel-Manager/models"
	"github.com/GivenCloud/Hotel-Manager/response"
	"github.com/GivenCloud/Hotel-Manager/services"
	"github.com/GivenCloud/Hotel-Manager/services/logger"
	"github.com/GivenCloud/Hotel-Manager/services/notification"
	"github.com/GivenCloud/Hotel-Manager/utils"
	"github.com/GivenCloud/Hotel-Manager/validator"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingController exposes the admission engine over HTTP. Both directions
// answer with the same shape: the resulting roster plus the ordered soft
// failure messages embedded in a 200 body.
type BookingController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
	service  *services.BookingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *BookingController {
	return &BookingController{
		DB:       db,
		Redis:    redisCli,
		Notifier: notification.NewMelodyService(m),
		service: services.NewBookingService(services.BookingServiceOptions{
			Store:  services.NewGormBookingStore(db),
			Logger: logger.NewComponentLogger("booking", logger.LevelFromEnv()),
		}),
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondBookingError maps engine errors onto the HTTP envelope
func respondBookingError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeRoomNotFound, errors.ErrCodeGuestNotFound:
			response.NotFoundWithMessage(c, appErr.Message)
			return
		case errors.ErrCodeInvalidInput, errors.ErrCodeRequiredField,
			errors.ErrCodeInvalidFormat, errors.ErrCodeValidation:
			response.BadRequest(c, appErr.Message)
			return
		}
	}
	utils.LogError("booking error: %v", err)
	response.ServerError(c)
}

func (bc *BookingController) invalidateRoster(roomIDs []uint, guestIDs []uint) {
	for _, id := range roomIDs {
		if err := services.DeleteFromRedis(config.Ctx, bc.Redis, fmt.Sprintf(constants.RoomRosterKeyFmt, id)); err != nil {
			log.Printf("Failed to invalidate room roster cache: %v", err)
		}
	}
	for _, id := range guestIDs {
		if err := services.DeleteFromRedis(config.Ctx, bc.Redis, fmt.Sprintf(constants.GuestRosterKeyFmt, id)); err != nil {
			log.Printf("Failed to invalidate guest roster cache: %v", err)
		}
	}
}

func (bc *BookingController) broadcast(scope string, id uint) {
	if err := bc.Notifier.SendMessage(notification.NewRosterEvent(scope, id).Build()); err != nil {
		log.Printf("Failed to broadcast roster event: %v", err)
	}
}

// GetRoomGuests returns the room's roster with the stay interval of each
// booking. Cached for ten minutes.
func (bc *BookingController) GetRoomGuests(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf(constants.RoomRosterKeyFmt, roomID)
	var booked []dto.BookedGuest
	if err := services.GetFromRedis(config.Ctx, bc.Redis, cacheKey, &booked); err == nil && len(booked) > 0 {
		response.Success(c, booked)
		return
	}

	var room models.Room
	if err := bc.DB.First(&room, roomID).Error; err != nil {
		response.NotFoundWithMessage(c, "room not found")
		return
	}

	err := bc.DB.Table("room_guests").
		Joins("JOIN guests ON guests.id = room_guests.guest_id").
		Where("room_guests.room_id = ?", roomID).
		Select("guests.id, guests.name, guests.last_name, room_guests.check_in_date, room_guests.check_out_date").
		Order("room_guests.check_in_date, guests.id").
		Scan(&booked).Error
	if err != nil {
		utils.LogError("Error retrieving room roster: %v", err)
		response.ServerError(c)
		return
	}

	if err := services.SetToRedis(config.Ctx, bc.Redis, cacheKey, booked, constants.RosterCacheTTL); err != nil {
		log.Printf("Failed to cache room roster: %v", err)
	}
	response.Success(c, booked)
}

// GetGuestRooms mirrors GetRoomGuests for the guest direction
func (bc *BookingController) GetGuestRooms(c *gin.Context) {
	guestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf(constants.GuestRosterKeyFmt, guestID)
	var booked []dto.BookedRoom
	if err := services.GetFromRedis(config.Ctx, bc.Redis, cacheKey, &booked); err == nil && len(booked) > 0 {
		response.Success(c, booked)
		return
	}

	var guest models.Guest
	if err := bc.DB.First(&guest, guestID).Error; err != nil {
		response.NotFoundWithMessage(c, "guest not found")
		return
	}

	err := bc.DB.Table("room_guests").
		Joins("JOIN rooms ON rooms.id = room_guests.room_id").
		Where("room_guests.guest_id = ?", guestID).
		Select("rooms.id, rooms.number, room_guests.check_in_date, room_guests.check_out_date").
		Order("room_guests.check_in_date, rooms.id").
		Scan(&booked).Error
	if err != nil {
		utils.LogError("Error retrieving guest roster: %v", err)
		response.ServerError(c)
		return
	}

	if err := services.SetToRedis(config.Ctx, bc.Redis, cacheKey, booked, constants.RosterCacheTTL); err != nil {
		log.Printf("Failed to cache guest roster: %v", err)
	}
	response.Success(c, booked)
}

func (bc *BookingController) addGuests(c *gin.Context, replace bool) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "guest_id, checkInDate and checkOutDate are required")
		return
	}
	if err := validator.ValidateBookingBatch(req.GuestIDs, req.CheckInDate, req.CheckOutDate); err != nil {
		respondBookingError(c, err)
		return
	}

	roster, failures, err := bc.service.AddGuestsToRoom(roomID, req.GuestIDs, req.CheckInDate, req.CheckOutDate, replace)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateRoster([]uint{roomID}, req.GuestIDs)
	bc.broadcast("room", roomID)

	response.SuccessWithErrors(c, toGuestRoster(roster), failures)
}

// AddGuestsToRoom admits a guest batch into a room
func (bc *BookingController) AddGuestsToRoom(c *gin.Context) {
	bc.addGuests(c, false)
}

// UpdateRoomGuests replaces the room's bookings with the given guest batch
func (bc *BookingController) UpdateRoomGuests(c *gin.Context) {
	bc.addGuests(c, true)
}

// RemoveGuestsFromRoom detaches the bookings matching room, guest and both
// dates exactly
func (bc *BookingController) RemoveGuestsFromRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "guest_id, checkInDate and checkOutDate are required")
		return
	}

	roster, err := bc.service.RemoveGuestsFromRoom(roomID, req.GuestIDs, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateRoster([]uint{roomID}, req.GuestIDs)
	bc.broadcast("room", roomID)

	response.Success(c, toGuestRoster(roster))
}

func (bc *BookingController) addRooms(c *gin.Context, replace bool) {
	guestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "room_id, checkInDate and checkOutDate are required")
		return
	}
	if err := validator.ValidateBookingBatch(req.RoomIDs, req.CheckInDate, req.CheckOutDate); err != nil {
		respondBookingError(c, err)
		return
	}

	roster, failures, err := bc.service.AddRoomsToGuest(guestID, req.RoomIDs, req.CheckInDate, req.CheckOutDate, replace)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateRoster(req.RoomIDs, []uint{guestID})
	bc.broadcast("guest", guestID)

	response.SuccessWithErrors(c, toRoomRoster(roster), failures)
}

// AddRoomsToGuest admits the guest into each room of the batch
func (bc *BookingController) AddRoomsToGuest(c *gin.Context) {
	bc.addRooms(c, false)
}

// UpdateGuestRooms replaces the guest's bookings with the given room batch
func (bc *BookingController) UpdateGuestRooms(c *gin.Context) {
	bc.addRooms(c, true)
}

// RemoveRoomsFromGuest is the guest-centric removal
func (bc *BookingController) RemoveRoomsFromGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AddRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "room_id, checkInDate and checkOutDate are required")
		return
	}

	roster, err := bc.service.RemoveRoomsFromGuest(guestID, req.RoomIDs, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	bc.invalidateRoster(req.RoomIDs, []uint{guestID})
	bc.broadcast("guest", guestID)

	response.Success(c, toRoomRoster(roster))
}

func toGuestRoster(guests []models.Guest) []dto.GuestRosterEntry {
	roster := make([]dto.GuestRosterEntry, 0, len(guests))
	for _, g := range guests {
		roster = append(roster, dto.GuestRosterEntry{
			ID:          g.ID,
			Name:        g.Name,
			LastName:    g.LastName,
			DniPassport: g.DniPassport,
			Email:       g.Email,
			Phone:       g.Phone,
		})
	}
	return roster
}

func toRoomRoster(rooms []models.Room) []dto.RoomRosterEntry {
	roster := make([]dto.RoomRosterEntry, 0, len(rooms))
	for _, r := range rooms {
		roster = append(roster, dto.RoomRosterEntry{
			ID:     r.ID,
			Number: r.Number,
		})
	}
	return roster
}
