package dto

// ServiceIDsRequest carries the service ids to attach to or detach from a
// hotel or a guest.
type ServiceIDsRequest struct {
	ServiceIDs []uint `json:"service_id" binding:"required"`
}

// ServiceResponse is one service of an association roster
type ServiceResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID uint    `json:"categoryId"`
}
