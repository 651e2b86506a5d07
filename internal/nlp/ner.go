package nlp

import (
	"regexp"

	"github.com/jengzang/attention-backend-go/internal/models"
)

// entityPattern pairs an entity type with its recognition pattern.
// Kept in a slice so matches come out in a deterministic type order.
type entityPattern struct {
	entityType string
	re         *regexp.Regexp
}

var entityPatterns = []entityPattern{
	{"PERSON", regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)},
	{"ORG", regexp.MustCompile(`\b(Company|Corp|Inc|LLC|Ltd|University|College)\b`)},
	{"GPE", regexp.MustCompile(`\b(New York|London|Paris|Tokyo|California|Texas|United States|UK|USA)\b`)},
	{"DATE", regexp.MustCompile(`\b\d{4}\b|\b\d{1,2}/\d{1,2}/\d{4}\b|\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`)},
	{"MONEY", regexp.MustCompile(`\$\d+|\b\d+\s*(dollars|USD|euros|pounds)\b`)},
}

// NamedEntityRecognition extracts entities with simple surface patterns and
// groups them by type
func (p *Processor) NamedEntityRecognition(text, modelName string) *models.NERResult {
	result := &models.NERResult{
		Task:           "named_entity_recognition",
		Entities:       make([]models.Entity, 0),
		EntitiesByType: make(map[string][]models.EntityMention),
		ModelUsed:      p.resolveModel(models.TaskNER, modelName),
	}

	for _, pattern := range entityPatterns {
		for _, loc := range pattern.re.FindAllStringIndex(text, -1) {
			word := text[loc[0]:loc[1]]
			score := p.uniform(0.8, 0.95)

			result.Entities = append(result.Entities, models.Entity{
				EntityGroup: pattern.entityType,
				Word:        word,
				Start:       loc[0],
				End:         loc[1],
				Score:       score,
			})
			result.EntitiesByType[pattern.entityType] = append(result.EntitiesByType[pattern.entityType], models.EntityMention{
				Text:       word,
				Confidence: score,
				Start:      loc[0],
				End:        loc[1],
			})
		}
	}

	return result
}
