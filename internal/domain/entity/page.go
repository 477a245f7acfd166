package entity

import (
	"math"
	"strings"
)

const (
	// DefaultPageSize is used when a request does not specify a size.
	DefaultPageSize = 10
	// MaxPageSize bounds the size a single request may ask for.
	MaxPageSize = 100
)

// SortField enumerates the doctor attributes a listing can be ordered by.
type SortField string

const (
	SortByName      SortField = "name"
	SortByEmail     SortField = "email"
	SortByCRM       SortField = "crm"
	SortBySpecialty SortField = "specialty"
)

// IsValid checks if the SortField is a sortable attribute.
func (f SortField) IsValid() bool {
	switch f {
	case SortByName, SortByEmail, SortByCRM, SortBySpecialty:
		return true
	default:
		return false
	}
}

// SortDirection is the ordering direction of a listing.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the SortDirection is asc or desc.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// PageRequest describes which slice of an ordered listing to return.
// Page is zero based.
type PageRequest struct {
	Page      int           `json:"page"`
	Size      int           `json:"size"`
	Sort      SortField     `json:"sort"`
	Direction SortDirection `json:"direction"`
}

// DefaultPageRequest returns the first page of ten doctors ordered by name ascending.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:      0,
		Size:      DefaultPageSize,
		Sort:      SortByName,
		Direction: SortAsc,
	}
}

// IsValid reports whether every field of the request is within range.
func (p PageRequest) IsValid() bool {
	return p.Page >= 0 &&
		p.Size > 0 && p.Size <= MaxPageSize &&
		p.Sort.IsValid() &&
		p.Direction.IsValid()
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt64
// instead of wrapping, so a huge page number always lands past the end.
func (p PageRequest) Offset() int64 {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}

	return int64(p.Page) * int64(p.Size)
}

// Desc reports whether the request orders descending.
func (p PageRequest) Desc() bool {
	return p.Direction == SortDesc
}

// ParseSort splits a "field[,direction]" expression as sent by clients.
// Missing direction defaults to ascending. The result is not validated.
func ParseSort(expr string) (SortField, SortDirection) {
	field, dir, _ := strings.Cut(expr, ",")
	direction := SortDirection(strings.ToLower(strings.TrimSpace(dir)))
	if direction == "" {
		direction = SortAsc
	}

	return SortField(strings.ToLower(strings.TrimSpace(field))), direction
}

// Page is a bounded slice of an ordered result set plus the metadata
// a client needs to navigate the remaining pages.
type Page[T any] struct {
	Content       []T           `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"total_elements"`
	TotalPages    int           `json:"total_pages"`
	Sort          SortField     `json:"sort"`
	Direction     SortDirection `json:"direction"`
	First         bool          `json:"first"`
	Last          bool          `json:"last"`
	Empty         bool          `json:"empty"`
}

// NewPage assembles a Page from one slice of content and the total count.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Sort:          req.Sort,
		Direction:     req.Direction,
		First:         req.Page == 0,
		Last:          req.Page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}
