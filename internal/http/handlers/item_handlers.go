package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stocktrack/inventory-api/internal/models"
	repo "github.com/stocktrack/inventory-api/internal/repo"
)

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Adds an item to the inventory; the caller supplies the id
// @Tags items
// @Accept json
// @Produce json
// @Param item body models.Item true "Item to add"
// @Success 201 {object} ItemResult
// @Failure 400 {array} ItemValidationError
// @Failure 409 {object} ErrorResult
// @Router /api/items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload models.ItemPatch
	if err := readJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validateCreate(payload)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	item := payload.Apply(models.Item{ID: *payload.ID})
	created, err := itemRepo.Create(r.Context(), item)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "item id already exists")
			return
		}
		logger.Error("create item failed", zap.String("id", item.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create item")
		return
	}

	listCache.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, ItemResult{Message: "Item created", Item: created})
}

// GetItemsHandler godoc
// @Summary List all inventory items
// @Tags items
// @Produce json
// @Success 200 {array} models.Item
// @Failure 500 {object} ErrorResult
// @Router /api/items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if data, ok := listCache.Get(ctx); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	items, err := itemRepo.GetAll(ctx)
	if err != nil {
		logger.Error("list items failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not fetch items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	listCache.Set(ctx, data)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// GetItemByIDHandler godoc
// @Summary Get an inventory item by id
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} ErrorResult
// @Router /api/items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := itemRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		logger.Error("fetch item failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not fetch item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItemHandler godoc
// @Summary Update an inventory item
// @Description Applies a partial update; only the fields present in the body change
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body models.ItemPatch true "Fields to change"
// @Success 200 {object} ItemResult
// @Failure 400 {array} ItemValidationError
// @Failure 404 {object} ErrorResult
// @Router /api/items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.ItemPatch
	if err := readJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	validationErrors := validatePatch(patch)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := itemRepo.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		logger.Error("update item failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not update item")
		return
	}

	listCache.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, ItemResult{Message: "Item updated", Item: updated})
}

// DeleteItemHandler godoc
// @Summary Delete an inventory item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} MessageResult
// @Failure 404 {object} ErrorResult
// @Router /api/items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := itemRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		logger.Error("delete item failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not delete item")
		return
	}

	listCache.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, MessageResult{Message: "Item deleted"})
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// SearchItemsHandler godoc
// @Summary Filter and paginate inventory items
// @Tags items
// @Produce json
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by exact category"
// @Param minQty query int false "Minimum quantity"
// @Param maxQty query int false "Maximum quantity"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ItemsSearchResult
// @Failure 400 {object} ErrorResult
// @Router /api/items/search [get]
func SearchItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ItemFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		MinQty:   parseIntPtr(q.Get("minQty")),
		MaxQty:   parseIntPtr(q.Get("maxQty")),
		MinPrice: parseFloatPtr(q.Get("minPrice")),
		MaxPrice: parseFloatPtr(q.Get("maxPrice")),
		Offset:   parseIntPtr(q.Get("offset")),
		Limit:    parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		writeError(w, http.StatusBadRequest, "limit must be greater than zero")
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		writeError(w, http.StatusBadRequest, "offset must be zero or positive")
		return
	}

	items, total, err := itemRepo.Filter(r.Context(), filter)
	if err != nil {
		logger.Error("filter items failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not filter items")
		return
	}

	writeJSON(w, http.StatusOK, ItemsSearchResult{Data: items, Meta: Meta{TotalCount: total}})
}
