package dto

import (
	"time"

	"vinolog_backend/internal/models"
)

type CreateWineRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Winery   string `json:"winery" validate:"omitempty,max=200"`
	Country  string `json:"country" validate:"omitempty,max=100"`
	Grape    string `json:"grape" validate:"omitempty,max=100"`
	Vintage  int    `json:"vintage" validate:"omitempty,min=1800,max=2100"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// WineListParams - фильтры каталога (query)
type WineListParams struct {
	PageRequest
	Name    string `form:"name"`
	Country string `form:"country"`
}

type WineResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Winery    string    `json:"winery,omitempty"`
	Country   string    `json:"country,omitempty"`
	Grape     string    `json:"grape,omitempty"`
	Vintage   int       `json:"vintage,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewWineResponse(wine *models.Wine) *WineResponse {
	return &WineResponse{
		ID:        wine.ID,
		Name:      wine.Name,
		Winery:    wine.Winery,
		Country:   wine.Country,
		Grape:     wine.Grape,
		Vintage:   wine.Vintage,
		ImageURL:  wine.ImageURL,
		CreatedAt: wine.CreatedAt,
	}
}

// WineInfo - укороченная сводка для вложения в ReviewResponse
type WineInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Winery  string `json:"winery,omitempty"`
	Vintage int    `json:"vintage,omitempty"`
}

func NewWineInfo(wine *models.Wine) *WineInfo {
	return &WineInfo{
		ID:      wine.ID,
		Name:    wine.Name,
		Winery:  wine.Winery,
		Vintage: wine.Vintage,
	}
}
