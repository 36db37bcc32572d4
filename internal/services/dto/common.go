package dto

// ======================
// Pagination DTO
// ======================

// PageRequest - параметры страницы из query (?page=0&size=20)
type PageRequest struct {
	Page int `form:"page" validate:"omitempty,min=0"`
	Size int `form:"size" validate:"omitempty,min=1,max=100"`
}

const (
	DefaultPage = 0
	DefaultSize = 20
	MaxPageSize = 100
)

// Normalize подставляет дефолты: page=0, size=20, потолок size=100
func (p *PageRequest) Normalize() {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
}

// Page - единый формат постраничного ответа
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

// NewPage собирает страницу; пустой content сериализуется как [], не null
func NewPage[T any](content []T, total int64, page, size int) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}
}
