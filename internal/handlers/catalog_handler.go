package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cashflow/internal/game"
	"cashflow/internal/logger"
	"cashflow/internal/services"
)

// CatalogHandler handles catalog requests.
type CatalogHandler struct {
	catalogService services.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// OfferResponse is an offer card with its display label.
type OfferResponse struct {
	game.OfferCard
	KindLabel string `json:"kind_label"`
}

// EventResponse is an event card with a readable effect line.
type EventResponse struct {
	game.EventCard
	Effect string `json:"effect"`
}

// GetRoles handles listing the roles a game can start with.
// @Summary     List roles
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]game.Role "Roles"
// @Router      /catalog/roles [get]
func (h *CatalogHandler) GetRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": h.catalogService.Current().Roles})
}

// GetOffers handles listing the offer deck.
// @Summary     List offers
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]OfferResponse "Offers"
// @Router      /catalog/offers [get]
func (h *CatalogHandler) GetOffers(c *gin.Context) {
	offers := h.catalogService.Current().Offers
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, OfferResponse{OfferCard: o, KindLabel: o.Kind.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"offers": out})
}

// GetEvents handles listing the event deck.
// @Summary     List events
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]EventResponse "Events"
// @Router      /catalog/events [get]
func (h *CatalogHandler) GetEvents(c *gin.Context) {
	events := h.catalogService.Current().Events
	out := make([]EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, EventResponse{EventCard: ev, Effect: ev.EffectSummary()})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// ReloadCatalog handles re-reading the catalog from its source.
// @Summary     Reload catalog
// @Description Reload roles, offers and events. Running games keep their decks.
// @Tags        admin
// @Produce     json
// @Param       X-API-Key header string true "Admin API key"
// @Success     200 {object} map[string]int "Catalog sizes"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     422 {object} ErrorResponse "Invalid catalog"
// @Router      /admin/catalog/reload [post]
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	cat, err := h.catalogService.Reload()
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("catalog reloaded by admin", "client_ip", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{
		"roles":  len(cat.Roles),
		"offers": len(cat.Offers),
		"events": len(cat.Events),
	})
}
