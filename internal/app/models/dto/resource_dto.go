package dto

import "github.com/omondi/shulehub/internal/app/models"

// CreateResourceRequest is bound from the multipart form that accompanies
// the files[] upload.
type CreateResourceRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"omitempty,max=2000"`
	Subject     string `form:"subject" binding:"required,min=2,max=100"`
	Class       string `form:"class" binding:"required,min=2,max=50"`
	Teacher     string `form:"teacher" binding:"required,min=2,max=100"`
	Category    string `form:"category" binding:"omitempty,max=50"`
	Access      string `form:"accessLevel" binding:"required,oneof=student teacher admin"`
}

// ResourceFilterRequest carries list filters and pagination.
type ResourceFilterRequest struct {
	Subject  string `form:"subject" binding:"omitempty,max=100"`
	Class    string `form:"class" binding:"omitempty,max=50"`
	Access   string `form:"accessLevel" binding:"omitempty,oneof=student teacher admin"`
	Type     string `form:"type" binding:"omitempty,oneof=pdf document presentation spreadsheet image video audio archive"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
}

// ResourceListResponse is a page of resources with pagination metadata.
type ResourceListResponse struct {
	Resources  []*models.Resource `json:"resources"`
	Pagination PaginationInfo     `json:"pagination"`
}
