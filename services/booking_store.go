package services

import (
	"database/sql"
	stderrors "errors"

	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/GivenCloud/Hotel-Manager/models"
	"gorm.io/gorm"
)

// BookingStore is the storage boundary of the admission engine. Production
// uses the gorm implementation; tests run against an in-memory fake so the
// overlap and capacity rules stay checkable without a live database.
type BookingStore interface {
	RoomByID(id uint) (*models.Room, error)
	GuestByID(id uint) (*models.Guest, error)
	// Admit counts the room's bookings active over the candidate interval,
	// rejects on capacity or pair overlap, and inserts the booking row.
	// The three steps run as one unit of isolation.
	Admit(roomID, guestID uint, capacity int, checkIn, checkOut string) error
	ClearRoom(roomID uint) error
	ClearGuest(guestID uint) error
	Detach(roomID, guestID uint, checkIn, checkOut string) error
	GuestsOf(roomID uint) ([]models.Guest, error)
	RoomsOf(guestID uint) ([]models.Room, error)
}

// GormBookingStore implements BookingStore on Postgres via gorm.
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

// RoomByID loads a room with its type so capacity is resolved once per batch.
func (s *GormBookingStore) RoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Type").First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "room not found", errors.ErrRoomNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}
	return &room, nil
}

func (s *GormBookingStore) GuestByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeGuestNotFound, "guest not found", errors.ErrGuestNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load guest", err)
	}
	return &guest, nil
}

// Admit runs the capacity count, the pair overlap guard and the insert inside
// one serializable transaction. Two concurrent requests racing for the last
// slot of a room serialize here, so the capacity invariant holds under load.
// ISO dates compare lexicographically, so the overlap predicate
// (a <= d AND c <= b, inclusive bounds) runs directly on the raw columns.
func (s *GormBookingStore) Admit(roomID, guestID uint, capacity int, checkIn, checkOut string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.RoomGuest{}).
			Where("room_id = ? AND check_in_date <= ? AND check_out_date >= ?", roomID, checkOut, checkIn).
			Count(&active).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to count active bookings", err)
		}
		if active >= int64(capacity) {
			return errors.ErrRoomFull
		}

		var clashes int64
		if err := tx.Model(&models.RoomGuest{}).
			Where("room_id = ? AND guest_id = ? AND check_in_date <= ? AND check_out_date >= ?", roomID, guestID, checkOut, checkIn).
			Count(&clashes).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to check overlapping bookings", err)
		}
		if clashes > 0 {
			return errors.ErrOverlappingBooking
		}

		booking := models.RoomGuest{
			RoomID:       roomID,
			GuestID:      guestID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// ClearRoom removes every booking of a room. Used by the replace flow before
// re-admitting the new guest list.
func (s *GormBookingStore) ClearRoom(roomID uint) error {
	if err := s.db.Where("room_id = ?", roomID).Delete(&models.RoomGuest{}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to clear room bookings", err)
	}
	return nil
}

func (s *GormBookingStore) ClearGuest(guestID uint) error {
	if err := s.db.Where("guest_id = ?", guestID).Delete(&models.RoomGuest{}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to clear guest bookings", err)
	}
	return nil
}

// Detach deletes the booking matching room, guest and both dates exactly.
// A miss deletes nothing and is not an error, which keeps removal idempotent.
func (s *GormBookingStore) Detach(roomID, guestID uint, checkIn, checkOut string) error {
	err := s.db.
		Where("room_id = ? AND guest_id = ? AND check_in_date = ? AND check_out_date = ?",
			roomID, guestID, checkIn, checkOut).
		Delete(&models.RoomGuest{}).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to detach booking", err)
	}
	return nil
}

func (s *GormBookingStore) GuestsOf(roomID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.db.Model(&models.Guest{}).
		Distinct("guests.*").
		Joins("JOIN room_guests ON room_guests.guest_id = guests.id").
		Where("room_guests.room_id = ?", roomID).
		Order("guests.id").
		Find(&guests).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room roster", err)
	}
	return guests, nil
}

func (s *GormBookingStore) RoomsOf(guestID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Model(&models.Room{}).
		Distinct("rooms.*").
		Joins("JOIN room_guests ON room_guests.room_id = rooms.id").
		Where("room_guests.guest_id = ?", guestID).
		Order("rooms.id").
		Find(&rooms).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load guest roster", err)
	}
	return rooms, nil
}
