package dto

import "time"

// APIResponse is the standard response envelope for all endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Message   string       `json:"message,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// BulkResult summarizes a per-item batch operation: deleted N, failed M.
type BulkResult struct {
	Deleted   int     `json:"deleted"`
	Failed    int     `json:"failed"`
	FailedIDs []int64 `json:"failedIds,omitempty"`
}
