package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/config"
	"github.com/shenikar/travel_safety/internal/models"
	"github.com/shenikar/travel_safety/internal/service"
	"github.com/shenikar/travel_safety/pkg/e"
	"github.com/sirupsen/logrus"
)

// Services - сервисы, которые обслуживает HTTP слой
type Services struct {
	Incidents service.IncidentService
	Zones     service.SafetyZoneService
	Sos       service.SosService
	Contacts  service.EmergencyContactService
	Articles  service.ArticleService
}

type Handler struct {
	incidentService service.IncidentService
	zoneService     service.SafetyZoneService
	sosService      service.SosService
	contactService  service.EmergencyContactService
	articleService  service.ArticleService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: services.Incidents,
		zoneService:     services.Zones,
		sosService:      services.Sos,
		contactService:  services.Contacts,
		articleService:  services.Articles,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bind разбирает и валидирует тело запроса. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// fail переводит ошибку сервиса в HTTP ответ
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error, what string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		log.WithError(err).Warn(what + ": not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, e.ErrUnauthorized):
		log.WithError(err).Warn(what + ": forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidTransition):
		log.WithError(err).Warn(what + ": rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		log.WithError(err).Warn(what + ": conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	default:
		log.WithError(err).Error(what)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s ID", what)})
		return uuid.Nil, false
	}
	return id, true
}

// areaQuery читает lat, lng и radius из query. radius по умолчанию из конфига.
func (h *Handler) areaQuery(c *gin.Context) (models.Coordinate, float64, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return models.Coordinate{}, 0, errors.New("invalid lat")
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return models.Coordinate{}, 0, errors.New("invalid lng")
	}
	radius := h.cfg.DefaultNearbyRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Coordinate{}, 0, errors.New("invalid radius")
		}
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, radius, nil
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
