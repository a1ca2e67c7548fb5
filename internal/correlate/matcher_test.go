package correlate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/travel_safety/internal/models"
)

func newIncident(title string, incidentType models.IncidentType) *models.Incident {
	return &models.Incident{ID: uuid.New(), Title: title, Type: incidentType}
}

func TestMatch_TypeNameInDescription(t *testing.T) {
	m := NewMatcher()
	incident := newIncident("Pickpocket near station", models.IncidentTypeTheft)
	item := models.NewsItem{
		Title:       "Police report",
		Description: "A THEFT was reported downtown",
	}

	assert.Equal(t, []*models.Incident{incident}, m.Match(item, []*models.Incident{incident}))
}

func TestMatch_ExactLowercasedTypeAlwaysMatches(t *testing.T) {
	m := NewMatcher()
	types := []models.IncidentType{
		models.IncidentTypeTheft,
		models.IncidentTypeAccident,
		models.IncidentTypeMedicalEmergency,
		models.IncidentTypeAssault,
		models.IncidentTypeNaturalDisaster,
		models.IncidentTypeOther,
	}
	for _, incidentType := range types {
		incident := newIncident("zz", incidentType)
		item := models.NewsItem{Description: "prefix " + fold(string(incidentType)) + " suffix"}

		assert.Len(t, m.Match(item, []*models.Incident{incident}), 1, "type %s", incidentType)
	}
}

func TestMatch_TitleTokenOfMinLength(t *testing.T) {
	m := NewMatcher()
	incident := newIncident("Bus crash on highway", models.IncidentTypeOther)

	matched := m.Match(models.NewsItem{Title: "Highway closed after storm"}, []*models.Incident{incident})

	assert.Len(t, matched, 1)
}

func TestMatch_ShortTokensIgnored(t *testing.T) {
	m := NewMatcher()
	incident := newIncident("Car hit bus", models.IncidentTypeOther)

	matched := m.Match(models.NewsItem{Title: "car bus hit"}, []*models.Incident{incident})

	assert.Empty(t, matched)
}

func TestMatch_MultipleIncidents(t *testing.T) {
	m := NewMatcher()
	theft := newIncident("Wallet stolen", models.IncidentTypeTheft)
	accident := newIncident("Scooter collision", models.IncidentTypeAccident)
	unrelated := newIncident("Flooding", models.IncidentTypeNaturalDisaster)
	item := models.NewsItem{
		Title:       "Theft and accident reported",
		Description: "Tourists affected",
	}

	matched := m.Match(item, []*models.Incident{theft, accident, unrelated})

	assert.Equal(t, []*models.Incident{theft, accident}, matched)
}

func TestMatch_NoIncidents(t *testing.T) {
	m := NewMatcher()

	matched := m.Match(models.NewsItem{Title: "anything"}, nil)

	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestMatch_DiacriticsFolded(t *testing.T) {
	m := NewMatcher()
	incident := newIncident("Incêndio em São Paulo", models.IncidentTypeOther)

	matched := m.Match(models.NewsItem{Title: "Incendio perto de sao paulo"}, []*models.Incident{incident})

	assert.Len(t, matched, 1)
}
