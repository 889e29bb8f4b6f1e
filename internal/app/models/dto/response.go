package dto

// APIResponse provides the standard envelope for staff API responses
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse wraps data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Data: data,
	}
}

// PaginationInfo holds paging metadata for list responses
type PaginationInfo struct {
	Page       int   `json:"page" example:"0"`
	PageSize   int   `json:"pageSize" example:"10"`
	TotalItems int64 `json:"totalItems" example:"42"`
	TotalPages int   `json:"totalPages" example:"5"`
}
