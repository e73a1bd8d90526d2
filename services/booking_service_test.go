package services

import (
	stderrors "errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/GivenCloud/Hotel-Manager/errors"
	"github.com/GivenCloud/Hotel-Manager/models"
)

// memBooking is one stored booking row of the in-memory store
type memBooking struct {
	roomID   uint
	guestID  uint
	checkIn  string
	checkOut string
}

// memStore implements BookingStore in memory so the admission rules are
// testable without a database. The mutex gives Admit the same isolation the
// gorm store gets from its serializable transaction.
type memStore struct {
	mu       sync.Mutex
	rooms    map[uint]*models.Room
	guests   map[uint]*models.Guest
	bookings []memBooking
}

func newMemStore() *memStore {
	return &memStore{
		rooms:  make(map[uint]*models.Room),
		guests: make(map[uint]*models.Guest),
	}
}

func (s *memStore) addRoom(id uint, number, capacity int) {
	s.rooms[id] = &models.Room{
		ID:     id,
		Number: number,
		Type:   models.Type{ID: id, Name: "test", Capacity: capacity},
	}
}

func (s *memStore) addGuest(id uint, name string) {
	s.guests[id] = &models.Guest{ID: id, Name: name}
}

func (s *memStore) RoomByID(id uint) (*models.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "room not found", errors.ErrRoomNotFound)
	}
	return room, nil
}

func (s *memStore) GuestByID(id uint) (*models.Guest, error) {
	guest, ok := s.guests[id]
	if !ok {
		return nil, errors.NewAppError(errors.ErrCodeGuestNotFound, "guest not found", errors.ErrGuestNotFound)
	}
	return guest, nil
}

func (s *memStore) Admit(roomID, guestID uint, capacity int, checkIn, checkOut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	for _, b := range s.bookings {
		if b.roomID == roomID && IntervalsIntersect(b.checkIn, b.checkOut, checkIn, checkOut) {
			active++
		}
	}
	if active >= capacity {
		return errors.ErrRoomFull
	}

	for _, b := range s.bookings {
		if b.roomID == roomID && b.guestID == guestID && IntervalsIntersect(b.checkIn, b.checkOut, checkIn, checkOut) {
			return errors.ErrOverlappingBooking
		}
	}

	s.bookings = append(s.bookings, memBooking{roomID: roomID, guestID: guestID, checkIn: checkIn, checkOut: checkOut})
	return nil
}

func (s *memStore) ClearRoom(roomID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.roomID != roomID {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	return nil
}

func (s *memStore) ClearGuest(guestID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.guestID != guestID {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	return nil
}

func (s *memStore) Detach(roomID, guestID uint, checkIn, checkOut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.roomID == roomID && b.guestID == guestID && b.checkIn == checkIn && b.checkOut == checkOut {
			continue
		}
		kept = append(kept, b)
	}
	s.bookings = kept
	return nil
}

func (s *memStore) GuestsOf(roomID uint) ([]models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[uint]bool)
	var ids []uint
	for _, b := range s.bookings {
		if b.roomID == roomID && !seen[b.guestID] {
			seen[b.guestID] = true
			ids = append(ids, b.guestID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	roster := make([]models.Guest, 0, len(ids))
	for _, id := range ids {
		roster = append(roster, *s.guests[id])
	}
	return roster, nil
}

func (s *memStore) RoomsOf(guestID uint) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[uint]bool)
	var ids []uint
	for _, b := range s.bookings {
		if b.guestID == guestID && !seen[b.roomID] {
			seen[b.roomID] = true
			ids = append(ids, b.roomID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	roster := make([]models.Room, 0, len(ids))
	for _, id := range ids {
		roster = append(roster, *s.rooms[id])
	}
	return roster, nil
}

func newTestService(store BookingStore) *BookingService {
	return NewBookingService(BookingServiceOptions{Store: store})
}

func guestIDs(roster []models.Guest) []uint {
	ids := make([]uint, 0, len(roster))
	for _, g := range roster {
		ids = append(ids, g.ID)
	}
	return ids
}

func roomIDs(roster []models.Room) []uint {
	ids := make([]uint, 0, len(roster))
	for _, r := range roster {
		ids = append(ids, r.ID)
	}
	return ids
}

func equalIDs(got, want []uint) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestAddGuestsToRoomStopsAtFirstCapacityFailure(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	store.addGuest(1, "Alice")
	store.addGuest(2, "Bob")
	store.addGuest(3, "Carol")

	svc := newTestService(store)
	roster, failures, err := svc.AddGuestsToRoom(1, []uint{1, 2, 3}, "2024-01-01", "2024-01-05", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !equalIDs(guestIDs(roster), []uint{1, 2}) {
		t.Errorf("roster = %v, want [1 2]", guestIDs(roster))
	}
	if len(failures) != 1 {
		t.Fatalf("failures = %v, want exactly one", failures)
	}
	if failures[0] != "Room 101 is full" {
		t.Errorf("failure = %q, want %q", failures[0], "Room 101 is full")
	}
	if len(store.bookings) != 2 {
		t.Errorf("stored bookings = %d, want 2", len(store.bookings))
	}
}

func TestAddGuestsToRoomAbortsRemainingBatchOnCapacity(t *testing.T) {
	// Guest 3 hits the capacity wall; guest 4 must never be attempted even
	// though a later removal could have made room for it.
	store := newMemStore()
	store.addRoom(1, 101, 2)
	for i := uint(1); i <= 4; i++ {
		store.addGuest(i, fmt.Sprintf("guest-%d", i))
	}

	svc := newTestService(store)
	roster, failures, err := svc.AddGuestsToRoom(1, []uint{1, 2, 3, 4}, "2024-03-01", "2024-03-03", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !equalIDs(guestIDs(roster), []uint{1, 2}) {
		t.Errorf("roster = %v, want [1 2]", guestIDs(roster))
	}
	if len(failures) != 1 {
		t.Errorf("failures = %v, want a single capacity message", failures)
	}
}

func TestAddRoomsToGuestContinuesPastCapacityFailure(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 1)
	store.addRoom(2, 102, 1)
	store.addGuest(1, "Alice")
	store.addGuest(2, "Bob")

	svc := newTestService(store)
	// fill room 101
	if _, _, err := svc.AddGuestsToRoom(1, []uint{2}, "2024-01-01", "2024-01-05", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	roster, failures, err := svc.AddRoomsToGuest(1, []uint{1, 2}, "2024-01-01", "2024-01-05", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// room 101 rejected, room 102 still attempted and admitted
	if !equalIDs(roomIDs(roster), []uint{2}) {
		t.Errorf("roster = %v, want [2]", roomIDs(roster))
	}
	if len(failures) != 1 || failures[0] != "Room 101 is full" {
		t.Errorf("failures = %v, want [Room 101 is full]", failures)
	}
}

func TestReplaceExistingRemovesPriorBookings(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	store.addGuest(1, "Alice")

	svc := newTestService(store)
	if _, _, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-01", "2024-01-05", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	roster, failures, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-10", "2024-01-15", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 0 {
		t.Errorf("failures = %v, want none", failures)
	}
	if !equalIDs(guestIDs(roster), []uint{1}) {
		t.Errorf("roster = %v, want [1]", guestIDs(roster))
	}
	if len(store.bookings) != 1 {
		t.Fatalf("stored bookings = %d, want 1", len(store.bookings))
	}
	if store.bookings[0].checkIn != "2024-01-10" || store.bookings[0].checkOut != "2024-01-15" {
		t.Errorf("booking interval = %s..%s, want the replacement dates",
			store.bookings[0].checkIn, store.bookings[0].checkOut)
	}
}

func TestRemoveBookingIsIdempotent(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	store.addGuest(1, "Alice")

	svc := newTestService(store)
	if _, _, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-10", "2024-01-15", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	first, err := svc.RemoveGuestsFromRoom(1, []uint{1}, "2024-01-10", "2024-01-15")
	if err != nil {
		t.Fatalf("first removal: %v", err)
	}
	second, err := svc.RemoveGuestsFromRoom(1, []uint{1}, "2024-01-10", "2024-01-15")
	if err != nil {
		t.Fatalf("second removal must be a no-op, got: %v", err)
	}

	if len(first) != 0 || len(second) != 0 {
		t.Errorf("rosters = %v / %v, want both empty", guestIDs(first), guestIDs(second))
	}
}

func TestRemoveBookingRequiresExactMatch(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	store.addGuest(1, "Alice")

	svc := newTestService(store)
	if _, _, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-10", "2024-01-15", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// check-out differs: nothing may be detached
	roster, err := svc.RemoveGuestsFromRoom(1, []uint{1}, "2024-01-10", "2024-01-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(guestIDs(roster), []uint{1}) {
		t.Errorf("roster = %v, want [1] (partial match must be a no-op)", guestIDs(roster))
	}
}

func TestRemoveBookingRejectsInvalidInput(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	svc := newTestService(store)

	cases := []struct {
		name     string
		ids      []uint
		checkIn  string
		checkOut string
	}{
		{"empty id list", nil, "2024-01-10", "2024-01-15"},
		{"missing check-in", []uint{1}, "", "2024-01-15"},
		{"missing check-out", []uint{1}, "2024-01-10", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RemoveGuestsFromRoom(1, tc.ids, tc.checkIn, tc.checkOut)
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("err = %v, want InvalidInput", err)
			}
		})
	}
}

func TestOverlappingBookingIsRejectedPerItem(t *testing.T) {
	// nested interval: [02-05, 02-08] inside [02-01, 02-10]
	store := newMemStore()
	store.addRoom(1, 101, 5)
	store.addGuest(1, "Alice")

	svc := newTestService(store)
	if _, _, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-02-01", "2024-02-10", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	roster, failures, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-02-05", "2024-02-08", false)
	if err != nil {
		t.Fatalf("overlap must be a soft failure, got error: %v", err)
	}
	if len(failures) != 1 || !strings.Contains(failures[0], "already has a booking") {
		t.Errorf("failures = %v, want one overlap message", failures)
	}
	if !equalIDs(guestIDs(roster), []uint{1}) {
		t.Errorf("roster = %v, want [1]", guestIDs(roster))
	}
	if len(store.bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1 (no duplicate interval)", len(store.bookings))
	}
}

func TestOverlapUsesInclusiveBounds(t *testing.T) {
	// same pair, intervals touching on a single day must be rejected
	store := newMemStore()
	store.addRoom(1, 101, 5)
	store.addGuest(1, "Alice")

	svc := newTestService(store)
	if _, _, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-01", "2024-01-05", false); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, failures, err := svc.AddGuestsToRoom(1, []uint{1}, "2024-01-05", "2024-01-08", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 1 {
		t.Errorf("touching intervals must overlap, failures = %v", failures)
	}

	// a disjoint interval for the same pair is fine
	_, failures, err = svc.AddGuestsToRoom(1, []uint{1}, "2024-01-06", "2024-01-08", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 0 {
		t.Errorf("disjoint interval rejected: %v", failures)
	}
}

func TestUnknownRoomAndGuestAreHardFailures(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 2)
	store.addGuest(1, "Alice")
	svc := newTestService(store)

	_, _, err := svc.AddGuestsToRoom(99, []uint{1}, "2024-01-01", "2024-01-05", false)
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeRoomNotFound {
		t.Errorf("err = %v, want RoomNotFound", err)
	}

	_, _, err = svc.AddGuestsToRoom(1, []uint{99}, "2024-01-01", "2024-01-05", false)
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeGuestNotFound {
		t.Errorf("err = %v, want GuestNotFound", err)
	}

	_, _, err = svc.AddRoomsToGuest(99, []uint{1}, "2024-01-01", "2024-01-05", false)
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeGuestNotFound {
		t.Errorf("err = %v, want GuestNotFound", err)
	}
}

func TestCapacityInvariantUnderRandomizedBatches(t *testing.T) {
	// property: whatever the admission outcomes, no room ever holds more
	// concurrently active bookings than its capacity
	rng := rand.New(rand.NewSource(42))

	store := newMemStore()
	capacities := map[uint]int{1: 1, 2: 2, 3: 3}
	for roomID, capacity := range capacities {
		store.addRoom(roomID, 100+int(roomID), capacity)
	}
	for i := uint(1); i <= 20; i++ {
		store.addGuest(i, fmt.Sprintf("guest-%d", i))
	}

	svc := newTestService(store)
	for i := 0; i < 200; i++ {
		roomID := uint(rng.Intn(3) + 1)
		batch := make([]uint, 0, 3)
		for len(batch) < 1+rng.Intn(3) {
			batch = append(batch, uint(rng.Intn(20)+1))
		}
		startDay := rng.Intn(20) + 1
		endDay := startDay + rng.Intn(8) + 1
		checkIn := fmt.Sprintf("2024-06-%02d", startDay)
		checkOut := fmt.Sprintf("2024-06-%02d", endDay)

		if _, _, err := svc.AddGuestsToRoom(roomID, batch, checkIn, checkOut, false); err != nil {
			t.Fatalf("batch %d: %v", i, err)
		}
	}

	for day := 1; day <= 30; day++ {
		date := fmt.Sprintf("2024-06-%02d", day)
		perRoom := make(map[uint]int)
		for _, b := range store.bookings {
			if b.checkIn <= date && date <= b.checkOut {
				perRoom[b.roomID]++
			}
		}
		for roomID, active := range perRoom {
			if active > capacities[roomID] {
				t.Fatalf("room %d holds %d active bookings on %s, capacity %d",
					roomID, active, date, capacities[roomID])
			}
		}
	}
}

func TestPairOverlapInvariantAfterRandomizedBatches(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	store := newMemStore()
	store.addRoom(1, 101, 12)
	for i := uint(1); i <= 5; i++ {
		store.addGuest(i, fmt.Sprintf("guest-%d", i))
	}

	svc := newTestService(store)
	for i := 0; i < 300; i++ {
		guest := uint(rng.Intn(5) + 1)
		startDay := rng.Intn(25) + 1
		endDay := startDay + rng.Intn(5) + 1
		if _, _, err := svc.AddGuestsToRoom(1, []uint{guest},
			fmt.Sprintf("2024-07-%02d", startDay), fmt.Sprintf("2024-07-%02d", endDay), false); err != nil {
			t.Fatalf("batch %d: %v", i, err)
		}
	}

	for i, a := range store.bookings {
		for _, b := range store.bookings[i+1:] {
			if a.roomID == b.roomID && a.guestID == b.guestID &&
				IntervalsIntersect(a.checkIn, a.checkOut, b.checkIn, b.checkOut) {
				t.Fatalf("stored overlapping bookings for pair (%d, %d): %s..%s and %s..%s",
					a.roomID, a.guestID, a.checkIn, a.checkOut, b.checkIn, b.checkOut)
			}
		}
	}
}

func TestRoomFullSentinelIsDistinguishable(t *testing.T) {
	store := newMemStore()
	store.addRoom(1, 101, 0)

	err := store.Admit(1, 1, 0, "2024-01-01", "2024-01-02")
	if !stderrors.Is(err, errors.ErrRoomFull) {
		t.Errorf("err = %v, want ErrRoomFull", err)
	}
	if stderrors.Is(err, errors.ErrOverlappingBooking) {
		t.Errorf("capacity and overlap rejections must stay distinct kinds")
	}
}
