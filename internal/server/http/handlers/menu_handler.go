package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/venkateswarareddychalla/eatoes/internal/domain/errors"
	"github.com/venkateswarareddychalla/eatoes/internal/domain/model"
	"github.com/venkateswarareddychalla/eatoes/internal/server/http/dto"
	"github.com/venkateswarareddychalla/eatoes/internal/usecase"
)

// MenuHandler manages catalog endpoints.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *gin.Context) {
	filter, err := parseMenuFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, err := h.facade.MenuItems(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Search handles GET /api/menu/search.
func (h *MenuHandler) Search(c *gin.Context) {
	items, err := h.facade.SearchMenu(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Get handles GET /api/menu/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.facade.MenuItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Create handles POST /api/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), usecase.CreateMenuItemInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        model.MenuCategory(req.Category),
		Price:           req.Price,
		Ingredients:     req.Ingredients,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// Update handles PUT /api/menu/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateMenuItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	patch := model.MenuItemPatch{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Ingredients:     req.Ingredients,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
		ImageURL:        req.ImageURL,
	}
	if req.Category != nil {
		category := model.MenuCategory(*req.Category)
		patch.Category = &category
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.facade.DeleteMenuItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Menu item deleted successfully"})
}

// ToggleAvailability handles PATCH /api/menu/:id/availability.
func (h *MenuHandler) ToggleAvailability(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	item, err := h.facade.ToggleMenuItemAvailability(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

func parseMenuFilter(c *gin.Context) (model.MenuFilter, error) {
	var filter model.MenuFilter

	if raw, ok := c.GetQuery("category"); ok {
		category := model.MenuCategory(raw)
		if !category.Valid() {
			return filter, fmt.Errorf("%w: invalid category %q", domainErrors.ErrValidation, raw)
		}
		filter.Category = &category
	}
	if raw, ok := c.GetQuery("availability"); ok {
		switch raw {
		case "true":
			available := true
			filter.Available = &available
		case "false":
			available := false
			filter.Available = &available
		default:
			return filter, fmt.Errorf("%w: invalid availability %q", domainErrors.ErrValidation, raw)
		}
	}
	if raw, ok := c.GetQuery("minPrice"); ok {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid minPrice %q", domainErrors.ErrValidation, raw)
		}
		filter.MinPrice = &min
	}
	if raw, ok := c.GetQuery("maxPrice"); ok {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid maxPrice %q", domainErrors.ErrValidation, raw)
		}
		filter.MaxPrice = &max
	}

	return filter, nil
}

func toMenuItemResponse(m model.MenuItem) dto.MenuItemResponse {
	ingredients := m.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return dto.MenuItemResponse{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Category:        string(m.Category),
		Price:           m.Price.String(),
		Ingredients:     ingredients,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		ImageURL:        m.ImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toMenuItemResponses(items []model.MenuItem) []dto.MenuItemResponse {
	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, m := range items {
		response = append(response, toMenuItemResponse(m))
	}
	return response
}
