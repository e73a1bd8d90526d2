package dto

// AddGuestsRequest is the room-centric batch: guest ids admitted in order
// for one stay interval.
type AddGuestsRequest struct {
	GuestIDs     []uint `json:"guest_id" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// AddRoomsRequest is the guest-centric batch
type AddRoomsRequest struct {
	RoomIDs      []uint `json:"room_id" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// GuestRosterEntry is one guest of a room's roster
type GuestRosterEntry struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	DniPassport string `json:"dniPassport"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// RoomRosterEntry is one room of a guest's roster
type RoomRosterEntry struct {
	ID     uint `json:"id"`
	Number int  `json:"number"`
}

// BookedRoom is a roster row with its stay interval, as returned by the
// GET roster endpoints.
type BookedRoom struct {
	ID           uint   `json:"id"`
	Number       int    `json:"number"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// BookedGuest mirrors BookedRoom for the room-centric roster
type BookedGuest struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	LastName     string `json:"lastName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}
