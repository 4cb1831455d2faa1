package handlers

import "github.com/stocktrack/inventory-api/internal/models"

// ItemResult is the envelope returned by mutating endpoints.
type ItemResult struct {
	Message string      `json:"message"`
	Item    models.Item `json:"item"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type ErrorResult struct {
	Error string `json:"error"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ItemsSearchResult struct {
	Data []models.Item `json:"data"`
	Meta Meta          `json:"meta,omitempty"`
}
