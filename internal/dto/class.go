package dto

import "github.com/SscSPs/kas_kelas_app/internal/core/domain"

// CreateClassRequest defines the data needed to create a class.
type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateClassRequest defines the data allowed for updating a class.
type UpdateClassRequest struct {
	Name *string `json:"name"`
}

// ListClassesParams defines query parameters for listing classes.
type ListClassesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ClassResponse defines the data returned for a class.
type ClassResponse struct {
	ClassID string `json:"classID"`
	Name    string `json:"name"`
}

// ListClassesResponse wraps the list of classes.
type ListClassesResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// ToClassResponse converts a domain.Class to ClassResponse DTO.
func ToClassResponse(c *domain.Class) ClassResponse {
	return ClassResponse{
		ClassID: c.ClassID,
		Name:    c.Name,
	}
}

// ToListClassesResponse converts a slice of domain.Class to ListClassesResponse.
func ToListClassesResponse(classes []domain.Class) ListClassesResponse {
	responses := make([]ClassResponse, len(classes))
	for i := range classes {
		responses[i] = ToClassResponse(&classes[i])
	}
	return ListClassesResponse{Classes: responses}
}
