package v1

import (
	"github.com/shenikar/travel_safety/internal/models"
)

// DTOToIncidentModel преобразует DTO создания/обновления в доменную модель
func DTOToIncidentModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateIncidentRequest:
		return &models.Incident{
			Title:       v.Title,
			Description: v.Description,
			Latitude:    *v.Latitude,
			Longitude:   *v.Longitude,
			Type:        models.IncidentType(v.Type),
			Severity:    models.Severity(v.Severity),
			Status:      v.Status,
		}
	case UpdateIncidentRequest:
		return &models.Incident{
			Title:       v.Title,
			Description: v.Description,
			Type:        models.IncidentType(v.Type),
			Severity:    models.Severity(v.Severity),
			Status:      v.Status,
			AssignedTo:  v.AssignedTo,
		}
	}
	return nil
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Status:      model.Status,
		ReportedBy:  model.ReportedBy,
		AssignedTo:  model.AssignedTo,
		ReportedAt:  model.ReportedAt,
		UpdatedAt:   model.UpdatedAt,
		ResolvedAt:  model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelsToLiveIncidentResponses(live []*models.LiveIncident) []*LiveIncidentResponse {
	responses := make([]*LiveIncidentResponse, len(live))
	for i, item := range live {
		responses[i] = &LiveIncidentResponse{
			Incident: ModelToIncidentResponse(item.Incident),
			Articles: ModelsToArticleResponses(item.Articles),
		}
	}
	return responses
}

func DTOToZoneModel(dto SafetyZoneRequest) *models.SafetyZone {
	return &models.SafetyZone{
		Name:            dto.Name,
		CenterLatitude:  *dto.CenterLatitude,
		CenterLongitude: *dto.CenterLongitude,
		RadiusMeters:    dto.RadiusMeters,
		SafetyLevel:     models.SafetyLevel(dto.SafetyLevel),
		Description:     dto.Description,
	}
}

func ModelToZoneResponse(model *models.SafetyZone) *SafetyZoneResponse {
	return &SafetyZoneResponse{
		ID:              model.ID,
		Name:            model.Name,
		CenterLatitude:  model.CenterLatitude,
		CenterLongitude: model.CenterLongitude,
		RadiusMeters:    model.RadiusMeters,
		SafetyLevel:     string(model.SafetyLevel),
		Description:     model.Description,
		IncidentCount:   model.IncidentCount,
		CreatedBy:       model.CreatedBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ModelsToZoneResponses(zones []*models.SafetyZone) []*SafetyZoneResponse {
	responses := make([]*SafetyZoneResponse, len(zones))
	for i, model := range zones {
		responses[i] = ModelToZoneResponse(model)
	}
	return responses
}

func ModelToSosResponse(model *models.SosEvent) *SosEventResponse {
	return &SosEventResponse{
		ID:                    model.ID,
		UserID:                model.UserID,
		Latitude:              model.Latitude,
		Longitude:             model.Longitude,
		Message:               model.Message,
		Status:                string(model.Status),
		Timestamp:             model.Timestamp,
		ResolvedAt:            model.ResolvedAt,
		IsOffline:             model.IsOffline,
		LastKnownLocationTime: model.LastKnownLocationTime,
		RecoveredAt:           model.RecoveredAt,
	}
}

func ModelsToSosResponses(events []*models.SosEvent) []*SosEventResponse {
	responses := make([]*SosEventResponse, len(events))
	for i, model := range events {
		responses[i] = ModelToSosResponse(model)
	}
	return responses
}

func DTOToContactModel(dto EmergencyContactRequest) *models.EmergencyContact {
	return &models.EmergencyContact{
		Name:         dto.Name,
		Phone:        dto.Phone,
		Email:        dto.Email,
		Relationship: dto.Relationship,
		IsPrimary:    dto.IsPrimary,
	}
}

func ModelToContactResponse(model *models.EmergencyContact) *EmergencyContactResponse {
	return &EmergencyContactResponse{
		ID:           model.ID,
		Name:         model.Name,
		Phone:        model.Phone,
		Email:        model.Email,
		Relationship: model.Relationship,
		IsPrimary:    model.IsPrimary,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ModelsToContactResponses(contacts []*models.EmergencyContact) []*EmergencyContactResponse {
	responses := make([]*EmergencyContactResponse, len(contacts))
	for i, model := range contacts {
		responses[i] = ModelToContactResponse(model)
	}
	return responses
}

func ModelToArticleResponse(model *models.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:          model.ID,
		Title:       model.Title,
		Summary:     model.Summary,
		Source:      model.Source,
		URL:         model.URL,
		Category:    model.Category,
		PublishedAt: model.PublishedAt,
		IncidentID:  model.IncidentID,
	}
}

func ModelsToArticleResponses(articles []*models.Article) []*ArticleResponse {
	responses := make([]*ArticleResponse, len(articles))
	for i, model := range articles {
		responses[i] = ModelToArticleResponse(model)
	}
	return responses
}
