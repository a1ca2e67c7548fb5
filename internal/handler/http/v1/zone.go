package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/travel_safety/internal/models"
)

// @Summary Create a safety zone
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param zone body SafetyZoneRequest true "Safety zone"
// @Success 201 {object} SafetyZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input SafetyZoneRequest
	log := h.logger.WithField("method", "createZone")

	if !h.bind(c, log, &input) {
		return
	}

	zone := DTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), currentUser(c), zone); err != nil {
		h.fail(c, log, err, "Failed to create safety zone in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(zone))
}

// @Summary List safety zones
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SafetyZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.zoneService.ListZones(c.Request.Context())
	if err != nil {
		h.fail(c, log, err, "Failed to list safety zones")
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Update a safety zone
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Param zone body SafetyZoneRequest true "Safety zone"
// @Success 200 {object} SafetyZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, ok := pathID(c, "zone")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateZone").WithField("id", id)

	var input SafetyZoneRequest
	if !h.bind(c, log, &input) {
		return
	}

	zone := DTOToZoneModel(input)
	zone.ID = id
	updated, err := h.zoneService.UpdateZone(c.Request.Context(), zone)
	if err != nil {
		h.fail(c, log, err, "Failed to update safety zone in service")
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(updated))
}

// @Summary Delete a safety zone
// @Tags Zones
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, ok := pathID(c, "zone")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteZone").WithField("id", id)

	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		h.fail(c, log, err, "Failed to delete safety zone in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Find safety zones nearby
// @Description Zones whose center lies within radius meters of a point.
// @Tags Zones
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters"
// @Success 200 {array} SafetyZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/nearby [get]
func (h *Handler) nearbyZones(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyZones")

	center, radius, err := h.areaQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zones, err := h.zoneService.NearbyZones(c.Request.Context(), center, radius)
	if err != nil {
		h.fail(c, log, err, "Failed to find nearby safety zones")
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Check location
// @Description Safety zones containing the point and incidents within the default radius. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {object} LocationCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.logger.WithField("method", "checkLocation")

	if !h.bind(c, log, &input) {
		return
	}

	point := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	zones, err := h.zoneService.ZonesContaining(c.Request.Context(), point)
	if err != nil {
		h.fail(c, log, err, "Failed to find zones containing point")
		return
	}

	radius := h.cfg.DefaultNearbyRadiusMeters
	incidents, err := h.incidentService.NearbyIncidents(c.Request.Context(), point, radius)
	if err != nil {
		h.fail(c, log, err, "Failed to find incidents near point")
		return
	}

	c.JSON(http.StatusOK, LocationCheckResponse{
		Zones:        ModelsToZoneResponses(zones),
		Incidents:    ModelsToIncidentResponses(incidents),
		RadiusMeters: radius,
	})
}
