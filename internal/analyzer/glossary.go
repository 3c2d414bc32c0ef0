package analyzer

import (
	"strings"

	"github.com/arbovm/levenshtein"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// GlossaryEntry is one curated cultural term.
type GlossaryEntry struct {
	Term         string
	Category     models.CulturalCategory
	Significance int
	Definition   string
	Regions      []models.PortugueseRegion
}

// Glossary is the curated Portuguese cultural terminology table. Populated
// once at construction, read-only afterwards.
type Glossary struct {
	entries []GlossaryEntry
}

// NewGlossary builds the immutable cultural-term glossary.
func NewGlossary() *Glossary {
	return &Glossary{entries: []GlossaryEntry{
		{Term: "saudade", Category: models.CategoryFado, Significance: 95,
			Definition: "Untranslatable longing for something absent; the emotional register of fado"},
		{Term: "fado", Category: models.CategoryFado, Significance: 92,
			Definition: "Lisbon's urban song tradition, recognised by UNESCO",
			Regions:    []models.PortugueseRegion{models.RegionLisboa}},
		{Term: "azulejo", Category: models.CategoryAzulejos, Significance: 90,
			Definition: "Glazed ceramic tile, often blue and white, covering facades and churches",
			Regions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto}},
		{Term: "festa", Category: models.CategoryReligiousFestival, Significance: 80,
			Definition: "Community feast, usually tied to a patron saint"},
		{Term: "santos populares", Category: models.CategorySantosPopulares, Significance: 88,
			Definition: "The June popular saints festivities of Santo António, São João and São Pedro",
			Regions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto}},
		{Term: "romaria", Category: models.CategoryReligiousFestival, Significance: 84,
			Definition: "Religious pilgrimage festival combining procession and fair",
			Regions:    []models.PortugueseRegion{models.RegionMinho, models.RegionAzores}},
		{Term: "bacalhau", Category: models.CategoryTraditionalFood, Significance: 86,
			Definition: "Salted cod, centrepiece of festive Portuguese cooking"},
		{Term: "vindima", Category: models.CategoryWineCulture, Significance: 78,
			Definition: "The September grape harvest",
			Regions:    []models.PortugueseRegion{models.RegionDouro, models.RegionMinho}},
		{Term: "rancho", Category: models.CategoryFolkDance, Significance: 76,
			Definition: "Folk dance and music group keeping regional repertoire alive",
			Regions:    []models.PortugueseRegion{models.RegionMinho, models.RegionRibatejo}},
		{Term: "filigrana", Category: models.CategoryTraditionalCrafts, Significance: 82,
			Definition: "Gold filigree jewellery worked in fine wire",
			Regions:    []models.PortugueseRegion{models.RegionMinho, models.RegionPorto}},
		{Term: "manjerico", Category: models.CategorySantosPopulares, Significance: 70,
			Definition: "Basil pot exchanged with a verse during the June festivities",
			Regions:    []models.PortugueseRegion{models.RegionLisboa}},
		{Term: "presépio", Category: models.CategoryReligiousArtifacts, Significance: 74,
			Definition: "Nativity scene, often elaborate clay figurework",
			Regions:    []models.PortugueseRegion{models.RegionEstremadura}},
	}}
}

// Entries returns the glossary entries. Callers must not mutate the slice.
func (g *Glossary) Entries() []GlossaryEntry {
	return g.entries
}

// FindTerms scans one Portuguese fragment for glossary terms. Multi-word
// terms match on substring; single words also match within levenshtein
// distance 1 to absorb OCR noise and missing diacritics.
func (g *Glossary) FindTerms(fragment string) []models.CulturalTerm {
	lowered := strings.ToLower(fragment)
	words := strings.Fields(lowered)

	var terms []models.CulturalTerm
	for _, entry := range g.entries {
		if !g.matches(entry.Term, lowered, words) {
			continue
		}
		terms = append(terms, models.CulturalTerm{
			Term:           entry.Term,
			Language:       "pt",
			Category:       entry.Category,
			Significance:   entry.Significance,
			Definition:     entry.Definition,
			Regions:        entry.Regions,
			SourceFragment: fragment,
		})
	}
	return terms
}

func (g *Glossary) matches(term, fragment string, words []string) bool {
	if strings.Contains(fragment, term) {
		return true
	}
	// Fuzzy matching only for single-word terms long enough to be distinctive
	if strings.ContainsRune(term, ' ') || len([]rune(term)) < 4 {
		return false
	}
	for _, word := range words {
		word = strings.Trim(word, ".,;:!?\"'()")
		if levenshtein.Distance(word, term) <= 1 {
			return true
		}
	}
	return false
}
