package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/travel_safety/internal/models"
)

// @Summary Raise an SOS
// @Description Record an SOS for the current user and notify their emergency contacts. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param sos body SosRequest true "SOS request"
// @Success 201 {object} SosEventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) createSos(c *gin.Context) {
	var input SosRequest
	log := h.logger.WithField("method", "createSos")

	if !h.bind(c, log, &input) {
		return
	}

	location := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	event, err := h.sosService.CreateSosEvent(c.Request.Context(), currentUser(c), location, input.Message)
	if err != nil {
		h.fail(c, log, err, "Failed to create SOS event")
		return
	}
	c.JSON(http.StatusCreated, ModelToSosResponse(event))
}

// @Summary Raise an offline alert
// @Description Record that the current user is entering a no-network area. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param sos body SosRequest true "Last known location"
// @Success 201 {object} SosEventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/offline-alert [post]
func (h *Handler) createOfflineAlert(c *gin.Context) {
	var input SosRequest
	log := h.logger.WithField("method", "createOfflineAlert")

	if !h.bind(c, log, &input) {
		return
	}

	location := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	event, err := h.sosService.CreateOfflineAlert(c.Request.Context(), currentUser(c), location, input.Message)
	if err != nil {
		h.fail(c, log, err, "Failed to create offline alert")
		return
	}
	c.JSON(http.StatusCreated, ModelToSosResponse(event))
}

// @Summary Mark offline recovery
// @Description Record that the current user is back online. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Param sos body SosRequest true "Current location"
// @Success 201 {object} SosEventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/offline-recovered [post]
func (h *Handler) markOfflineRecovered(c *gin.Context) {
	var input SosRequest
	log := h.logger.WithField("method", "markOfflineRecovered")

	if !h.bind(c, log, &input) {
		return
	}

	location := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	event, err := h.sosService.MarkOfflineRecovered(c.Request.Context(), currentUser(c), location)
	if err != nil {
		h.fail(c, log, err, "Failed to mark offline recovery")
		return
	}
	c.JSON(http.StatusCreated, ModelToSosResponse(event))
}

// @Summary Update SOS status
// @Description Resolve or cancel a pending SOS. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Param status body SosStatusRequest true "New status"
// @Success 200 {object} SosEventResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID, body or transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "SOS not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{id}/status [put]
func (h *Handler) updateSosStatus(c *gin.Context) {
	id, ok := pathID(c, "SOS")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateSosStatus").WithField("id", id)

	var input SosStatusRequest
	if !h.bind(c, log, &input) {
		return
	}

	event, err := h.sosService.UpdateStatus(c.Request.Context(), id, models.SosStatus(input.Status))
	if err != nil {
		h.fail(c, log, err, "Failed to update SOS status")
		return
	}
	c.JSON(http.StatusOK, ModelToSosResponse(event))
}

// @Summary SOS history of the current user
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Current user ID"
// @Success 200 {array} SosEventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/user [get]
func (h *Handler) userSosEvents(c *gin.Context) {
	log := h.logger.WithField("method", "userSosEvents")

	events, err := h.sosService.ListUserEvents(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, log, err, "Failed to list user SOS events")
		return
	}
	c.JSON(http.StatusOK, ModelsToSosResponses(events))
}

// @Summary Pending SOS events
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SosEventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/pending [get]
func (h *Handler) pendingSosEvents(c *gin.Context) {
	log := h.logger.WithField("method", "pendingSosEvents")

	events, err := h.sosService.ListPending(c.Request.Context())
	if err != nil {
		h.fail(c, log, err, "Failed to list pending SOS events")
		return
	}
	c.JSON(http.StatusOK, ModelsToSosResponses(events))
}

// @Summary Recent SOS events
// @Tags SOS
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max events, 1..100" default(20)
// @Success 200 {array} SosEventResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/recent [get]
func (h *Handler) recentSosEvents(c *gin.Context) {
	log := h.logger.WithField("method", "recentSosEvents")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	events, err := h.sosService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, log, err, "Failed to list recent SOS events")
		return
	}
	c.JSON(http.StatusOK, ModelsToSosResponses(events))
}
