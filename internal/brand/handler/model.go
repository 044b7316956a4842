package handler

import (
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
)

type ItemsResponse struct {
	Items []brand.Summary `json:"items"`
}

func NewItemsResponse(items []brand.Summary) ItemsResponse {
	if items == nil {
		items = []brand.Summary{}
	}
	return ItemsResponse{Items: items}
}
