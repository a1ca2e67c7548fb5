package correlate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/shenikar/travel_safety/internal/models"
)

// MinTokenLength - минимальная длина слова заголовка инцидента, участвующего в сопоставлении
const MinTokenLength = 4

// Matcher связывает новостные элементы с известными инцидентами по ключевым словам
type Matcher struct {
	minTokenLength int
}

func NewMatcher() *Matcher {
	return &Matcher{minTokenLength: MinTokenLength}
}

// Match возвращает инциденты, к которым относится новость. Новость может
// совпасть с несколькими инцидентами или ни с одним.
func (m *Matcher) Match(item models.NewsItem, incidents []*models.Incident) []*models.Incident {
	haystack := fold(item.Title + " " + item.Description)

	matched := make([]*models.Incident, 0)
	for _, incident := range incidents {
		if m.matches(haystack, incident) {
			matched = append(matched, incident)
		}
	}
	return matched
}

func (m *Matcher) matches(haystack string, incident *models.Incident) bool {
	if incident.Type != "" && strings.Contains(haystack, fold(string(incident.Type))) {
		return true
	}

	for _, token := range strings.Fields(fold(incident.Title)) {
		if utf8.RuneCountInString(token) < m.minTokenLength {
			continue
		}
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

// fold приводит текст к нижнему регистру и убирает диакритику
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	return strings.ToLower(res)
}
