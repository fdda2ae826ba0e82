package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Timestamp  time.Time       `json:"timestamp" example:"2026-05-11T12:01:05.123Z"`
}

// SuccessResponse represents a plain message response
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes the page of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}
