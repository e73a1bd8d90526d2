package services

import (
	stderrors "errors"
	"fmt"

	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/GivenCloud/Hotel-Manager/models"
	"github.com/GivenCloud/Hotel-Manager/services/logger"
)

// BookingServiceOptions holds the dependencies of BookingService
type BookingServiceOptions struct {
	Store  BookingStore
	Logger logger.Logger
}

// BookingService decides, per counterpart of a batch request, whether a
// booking may be created, applying the capacity and overlap rules. Capacity
// and overlap rejections are soft: they are collected as failure messages
// next to the resulting roster instead of failing the whole request.
type BookingService struct {
	store BookingStore
	log   logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{store: opts.Store, log: l}
}

// AddGuestsToRoom admits each guest id, in input order, into the room for the
// given stay interval. The room's capacity is resolved once at the start of
// the batch. When replace is true all existing bookings of the room are
// removed first (update semantics: detach then add, not atomic).
//
// A capacity rejection aborts the rest of the batch; an overlap rejection is
// recorded for that guest and the batch continues. Both are returned as
// ordered failure messages, not errors.
func (s *BookingService) AddGuestsToRoom(roomID uint, guestIDs []uint, checkIn, checkOut string, replace bool) ([]models.Guest, []string, error) {
	if err := checkBatchInput(len(guestIDs), checkIn, checkOut); err != nil {
		return nil, nil, err
	}

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, nil, err
	}
	capacity := room.Capacity()

	if replace {
		if err := s.store.ClearRoom(room.ID); err != nil {
			return nil, nil, err
		}
	}

	var failures []string
	for _, guestID := range guestIDs {
		guest, err := s.store.GuestByID(guestID)
		if err != nil {
			return nil, nil, err
		}

		err = s.store.Admit(room.ID, guest.ID, capacity, checkIn, checkOut)
		if err == nil {
			continue
		}
		if stderrors.Is(err, errors.ErrRoomFull) {
			failures = append(failures, fmt.Sprintf("Room %d is full", room.Number))
			s.log.Info("room %d full, aborting batch with %d guests left", room.ID, remaining(guestIDs, guestID))
			break
		}
		if stderrors.Is(err, errors.ErrOverlappingBooking) {
			failures = append(failures, fmt.Sprintf("Guest %d already has a booking in room %d overlapping %s..%s", guest.ID, room.Number, checkIn, checkOut))
			continue
		}
		return nil, nil, err
	}

	roster, err := s.store.GuestsOf(room.ID)
	if err != nil {
		return nil, nil, err
	}
	return roster, failures, nil
}

// AddRoomsToGuest is the guest-centric mirror. Capacity is checked against
// each target room's own booking count. Unlike the room-centric direction, a
// capacity rejection does not abort the batch: the remaining room ids are
// still attempted.
func (s *BookingService) AddRoomsToGuest(guestID uint, roomIDs []uint, checkIn, checkOut string, replace bool) ([]models.Room, []string, error) {
	if err := checkBatchInput(len(roomIDs), checkIn, checkOut); err != nil {
		return nil, nil, err
	}

	guest, err := s.store.GuestByID(guestID)
	if err != nil {
		return nil, nil, err
	}

	if replace {
		if err := s.store.ClearGuest(guest.ID); err != nil {
			return nil, nil, err
		}
	}

	var failures []string
	for _, roomID := range roomIDs {
		room, err := s.store.RoomByID(roomID)
		if err != nil {
			return nil, nil, err
		}

		err = s.store.Admit(room.ID, guest.ID, room.Capacity(), checkIn, checkOut)
		if err == nil {
			continue
		}
		if stderrors.Is(err, errors.ErrRoomFull) {
			failures = append(failures, fmt.Sprintf("Room %d is full", room.Number))
			continue
		}
		if stderrors.Is(err, errors.ErrOverlappingBooking) {
			failures = append(failures, fmt.Sprintf("Guest %d already has a booking in room %d overlapping %s..%s", guest.ID, room.Number, checkIn, checkOut))
			continue
		}
		return nil, nil, err
	}

	roster, err := s.store.RoomsOf(guest.ID)
	if err != nil {
		return nil, nil, err
	}
	return roster, failures, nil
}

// RemoveGuestsFromRoom detaches, for each guest id, the booking whose room,
// guest and both dates match exactly. Non-matching entries are silent no-ops,
// so the operation is idempotent and safe to retry.
func (s *BookingService) RemoveGuestsFromRoom(roomID uint, guestIDs []uint, checkIn, checkOut string) ([]models.Guest, error) {
	if err := checkBatchInput(len(guestIDs), checkIn, checkOut); err != nil {
		return nil, err
	}

	room, err := s.store.RoomByID(roomID)
	if err != nil {
		return nil, err
	}

	for _, guestID := range guestIDs {
		if err := s.store.Detach(room.ID, guestID, checkIn, checkOut); err != nil {
			return nil, err
		}
	}
	return s.store.GuestsOf(room.ID)
}

// RemoveRoomsFromGuest is the guest-centric mirror of RemoveGuestsFromRoom.
func (s *BookingService) RemoveRoomsFromGuest(guestID uint, roomIDs []uint, checkIn, checkOut string) ([]models.Room, error) {
	if err := checkBatchInput(len(roomIDs), checkIn, checkOut); err != nil {
		return nil, err
	}

	guest, err := s.store.GuestByID(guestID)
	if err != nil {
		return nil, err
	}

	for _, roomID := range roomIDs {
		if err := s.store.Detach(roomID, guest.ID, checkIn, checkOut); err != nil {
			return nil, err
		}
	}
	return s.store.RoomsOf(guest.ID)
}

// checkBatchInput rejects an empty id list or missing dates before any
// storage access.
func checkBatchInput(ids int, checkIn, checkOut string) error {
	if ids == 0 || checkIn == "" || checkOut == "" {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "id list and both dates are required", errors.ErrInvalidInput)
	}
	return nil
}

func remaining(ids []uint, current uint) int {
	for i, id := range ids {
		if id == current {
			return len(ids) - i - 1
		}
	}
	return 0
}
