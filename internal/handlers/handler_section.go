package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for sections and items.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// registerCatalogRoutes registers the /sections and /items routes.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{catalogService: catalogService}

	sections := rg.Group("/sections")
	{
		sections.GET("", h.listSections)
		sections.POST("", h.createSection)
		sections.PUT("", h.updateSection)
		sections.DELETE("", h.deleteSection)
	}

	items := rg.Group("/items")
	{
		items.GET("", h.listItems)
		items.POST("", h.createItem)
		items.PUT("", h.updateItem)
		items.DELETE("", h.deleteItem)
	}
}

// listSections godoc
// @Summary List sections
// @Tags sections
// @Produce json
// @Success 200 {array} dto.SectionResponse
// @Security BearerAuth
// @Router /sections [get]
func (h *catalogHandler) listSections(c *gin.Context) {
	sections, err := h.catalogService.ListSections(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list sections")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSectionResponse(sections))
}

// createSection godoc
// @Summary Create a section
// @Description The caller becomes the section owner.
// @Tags sections
// @Accept json
// @Produce json
// @Param section body dto.CreateSectionRequest true "Section details"
// @Success 201 {object} dto.SectionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sections [post]
func (h *catalogHandler) createSection(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "section request", err)
		return
	}

	section, err := h.catalogService.CreateSection(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create section")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSectionResponse(section))
}

// updateSection godoc
// @Summary Rename a section
// @Tags sections
// @Accept json
// @Produce json
// @Param id query string false "Section ID, if not given in the body"
// @Param section body dto.UpdateSectionRequest true "Fields to update"
// @Success 200 {object} dto.SectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sections [put]
func (h *catalogHandler) updateSection(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "section request", err)
		return
	}
	sectionID, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	section, err := h.catalogService.UpdateSection(c.Request.Context(), sectionID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update section")
		return
	}
	c.JSON(http.StatusOK, dto.ToSectionResponse(section))
}

// deleteSection godoc
// @Summary Delete a section
// @Description Soft-deletes the section and every item in it.
// @Tags sections
// @Param id query string true "Section ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sections [delete]
func (h *catalogHandler) deleteSection(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	sectionID, ok := deleteTargetID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteSection(c.Request.Context(), sectionID, userID); err != nil {
		respondError(c, err, "Failed to delete section")
		return
	}
	c.Status(http.StatusNoContent)
}

// listItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Param section query string false "Only items of this section"
// @Success 200 {array} dto.ItemResponse
// @Security BearerAuth
// @Router /items [get]
func (h *catalogHandler) listItems(c *gin.Context) {
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}
	items, err := h.catalogService.ListItems(c.Request.Context(), params.SectionID)
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}

// createItem godoc
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown section"
// @Security BearerAuth
// @Router /items [post]
func (h *catalogHandler) createItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "item request", err)
		return
	}

	item, err := h.catalogService.CreateItem(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param id query string false "Item ID, if not given in the body"
// @Param item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [put]
func (h *catalogHandler) updateItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "item request", err)
		return
	}
	itemID, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	item, err := h.catalogService.UpdateItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an item
// @Tags items
// @Param id query string true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [delete]
func (h *catalogHandler) deleteItem(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	itemID, ok := deleteTargetID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		respondError(c, err, "Failed to delete item")
		return
	}
	c.Status(http.StatusNoContent)
}
