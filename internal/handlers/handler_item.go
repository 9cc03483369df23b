package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmastock/pharmastock_backend/internal/apperrors"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
	"github.com/pharmastock/pharmastock_backend/internal/middleware"
)

// itemHandler handles HTTP requests related to inventory items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(itemService portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{
		itemService: itemService,
	}
}

// RegisterItemRoutes sets up the routes for item management.
func RegisterItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
		items.PUT("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
		items.POST("/:itemID/stock", h.adjustStock)
	}
}

// createItem godoc
// @Summary Create a new inventory item
// @Description Adds an item to the inventory with its stock status derived from current stock
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create item"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create item in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Description Retrieves the item collection, optionally filtered by category or search text and sorted
// @Tags items
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Free-text search over name, description and manufacturer"
// @Param sortBy query string false "Sort key" Enums(name, expiryDate, stockStatus, price)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for listItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list items from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}

// getItem godoc
// @Summary Get a single inventory item
// @Description Retrieves an item by its ID
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve item"
// @Router /items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to get item from service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update an inventory item
// @Description Replaces an item's fields; stock status is recomputed from the supplied current stock
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Updated item details"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to update item"
// @Router /items/{itemID} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Item not found for update", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating item", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update item in service", slog.String("error", err.Error()), slog.String("item_id", itemID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	logger.Info("Item updated successfully", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Description Removes an item from the inventory; historical transactions keep their item references
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 204 "Item deleted"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to delete item"
// @Router /items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found for delete", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to delete item in service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	logger.Info("Item deleted successfully", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}

// adjustStock godoc
// @Summary Adjust an item's stock level
// @Description Adds or removes units; subtraction saturates at zero and the stock status is recomputed
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param adjustment body dto.AdjustStockRequest true "Stock adjustment"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Failed to adjust stock"
// @Router /items/{itemID}/stock [post]
func (h *itemHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for adjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	item, err := h.itemService.AdjustStock(c.Request.Context(), itemID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Item not found for stock adjustment", slog.String("item_id", itemID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		logger.Error("Failed to adjust stock in service", slog.String("error", err.Error()), slog.String("item_id", itemID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		return
	}

	logger.Info("Stock adjusted successfully",
		slog.String("item_id", itemID),
		slog.Int("current_stock", item.CurrentStock),
	)
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
