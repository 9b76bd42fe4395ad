package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Pagination is the page-based pagination block returned alongside list results.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// PaginationParams are the page-based query parameters.
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// DefaultPagination returns default pagination values
func DefaultPagination() *PaginationParams {
	return &PaginationParams{Page: 1, PerPage: 15}
}

// Validate clamps the parameters into their allowed ranges.
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 15
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the row offset for the current page.
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPagination builds the pagination block for a page of results.
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PaginatedResult pairs a page of items with its pagination block.
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewPaginatedResult creates a new paginated result
func NewPaginatedResult[T any](items []T, pagination *Pagination) *PaginatedResult[T] {
	return &PaginatedResult[T]{Items: items, Pagination: pagination}
}

// CursorDirection is the direction of keyset navigation.
type CursorDirection string

const (
	CursorDirectionNext CursorDirection = "next"
	CursorDirectionPrev CursorDirection = "prev"
)

// Cursor is the decoded keyset position.
type Cursor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CursorParams are the keyset query parameters. Cursor is base64 encoded.
type CursorParams struct {
	Cursor    string          `form:"cursor" json:"cursor"`
	Direction CursorDirection `form:"direction" json:"direction"`
	Limit     int             `form:"limit" json:"limit"`
}

// CursorPagination is the keyset pagination block returned alongside list results.
type CursorPagination struct {
	NextCursor *string `json:"next_cursor,omitempty"`
	PrevCursor *string `json:"prev_cursor,omitempty"`
	HasNext    bool    `json:"has_next"`
	HasPrev    bool    `json:"has_prev"`
	Limit      int     `json:"limit"`
}

// CursorPaginatedResult pairs a page of items with its keyset block.
type CursorPaginatedResult[T any] struct {
	Items      []T               `json:"items"`
	Pagination *CursorPagination `json:"pagination"`
}

// Validate clamps the parameters and defaults the direction to "next".
func (c *CursorParams) Validate() {
	if c.Limit < 1 {
		c.Limit = 15
	}
	if c.Limit > 100 {
		c.Limit = 100
	}
	if c.Direction == "" {
		c.Direction = CursorDirectionNext
	}
}

// DecodeCursor unpacks the base64 cursor, returning nil when none was supplied.
func (c *CursorParams) DecodeCursor() (*Cursor, error) {
	if c.Cursor == "" {
		return nil, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(c.Cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor format: %w", err)
	}

	var cursor Cursor
	if err := json.Unmarshal(decoded, &cursor); err != nil {
		return nil, fmt.Errorf("invalid cursor data: %w", err)
	}

	return &cursor, nil
}

// EncodeCursor packs an ID and optional timestamp into a base64 cursor.
func EncodeCursor(id string, createdAt ...time.Time) string {
	cursor := Cursor{ID: id}
	if len(createdAt) > 0 {
		cursor.CreatedAt = createdAt[0]
	}

	data, _ := json.Marshal(cursor)
	return base64.URLEncoding.EncodeToString(data)
}

// NewCursorPagination builds the keyset block from a page fetched with
// limit+1 rows, trimming the probe row when present. HasPrev is left for
// the caller, which knows whether a cursor was supplied.
func NewCursorPagination[T any](items []T, limit int, getID func(T) string, getCreatedAt func(T) time.Time) (*CursorPagination, []T) {
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	pagination := &CursorPagination{
		Limit:   limit,
		HasNext: hasMore,
	}

	if len(items) > 0 {
		last := items[len(items)-1]
		next := EncodeCursor(getID(last), getCreatedAt(last))
		pagination.NextCursor = &next

		first := items[0]
		prev := EncodeCursor(getID(first), getCreatedAt(first))
		pagination.PrevCursor = &prev
	}

	return pagination, items
}

// NewCursorPaginatedResult creates a new cursor-paginated result
func NewCursorPaginatedResult[T any](items []T, pagination *CursorPagination) *CursorPaginatedResult[T] {
	return &CursorPaginatedResult[T]{Items: items, Pagination: pagination}
}
