package analyzer

import (
	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// CategoryProfile carries the curated knowledge the classifier and verifier
// draw on for one cultural category.
type CategoryProfile struct {
	Category          models.CulturalCategory
	Description       string
	SecondaryLeanings []models.CulturalCategory
	TypicalRegions    []models.PortugueseRegion
	HistoricalPeriod  string
	SeasonalContext   string
	RelatedTraditions []string
	BaseSignificance  models.CulturalSignificance
	HighValue         bool
}

// CategoryDatabase is the process-wide cultural lookup table. It is populated
// once at construction and read-only thereafter, so it is safe to share
// across concurrent callers.
type CategoryDatabase struct {
	profiles map[models.CulturalCategory]CategoryProfile
	ordered  []models.CulturalCategory
}

// NewCategoryDatabase builds the immutable category database.
func NewCategoryDatabase() *CategoryDatabase {
	profiles := []CategoryProfile{
		{
			Category:          models.CategoryAzulejos,
			Description:       "Hand-painted glazed ceramic tilework",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryArchitecture, models.CategoryTraditionalCrafts},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto},
			HistoricalPeriod:  "16th-20th century",
			RelatedTraditions: []string{"tile painting workshops", "church facade restoration"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 92, CommunityRelevance: 78, TraditionalValue: 95,
				EducationalValue: 88, EmotionalResonance: 70,
				Description: "Azulejos are among the most recognisable expressions of Portuguese decorative art",
			},
			HighValue: true,
		},
		{
			Category:          models.CategoryFado,
			Description:       "Urban folk song tradition of longing and saudade",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryMusicInstruments, models.CategoryLiterature},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa},
			HistoricalPeriod:  "19th century onwards",
			RelatedTraditions: []string{"casa de fado evenings", "guitarra portuguesa"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 85, CommunityRelevance: 90, TraditionalValue: 88,
				EducationalValue: 75, EmotionalResonance: 96,
				Description: "Fado carries the emotional core of Portuguese identity abroad",
			},
		},
		{
			Category:          models.CategoryTraditionalFood,
			Description:       "Regional dishes and festive cooking",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryFamilyCelebration, models.CategoryWineCulture},
			TypicalRegions:    []models.PortugueseRegion{models.RegionMinho, models.RegionAlentejo, models.RegionAzores},
			RelatedTraditions: []string{"bacalhau preparations", "festa communal meals"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 70, CommunityRelevance: 92, TraditionalValue: 85,
				EducationalValue: 72, EmotionalResonance: 88,
				Description: "Food anchors diaspora gatherings more than any other tradition",
			},
		},
		{
			Category:          models.CategoryReligiousFestival,
			Description:       "Processions, romarias and patron saint feasts",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryReligiousArtifacts, models.CategoryTraditionalCostume},
			TypicalRegions:    []models.PortugueseRegion{models.RegionMinho, models.RegionAzores, models.RegionMadeira},
			SeasonalContext:   "spring and summer feast calendar",
			RelatedTraditions: []string{"romaria pilgrimages", "Senhor Santo Cristo"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 88, CommunityRelevance: 86, TraditionalValue: 90,
				EducationalValue: 80, EmotionalResonance: 91,
				Description: "Religious festivals remain the largest communal events of the year",
			},
		},
		{
			Category:          models.CategorySantosPopulares,
			Description:       "June popular saints street festivities",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryTraditionalFood, models.CategoryFolkDance},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto},
			SeasonalContext:   "June",
			RelatedTraditions: []string{"marchas populares", "sardinha assada", "manjerico"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 75, CommunityRelevance: 94, TraditionalValue: 82,
				EducationalValue: 68, EmotionalResonance: 93,
				Description: "Santo António and São João nights define early summer for the community",
			},
		},
		{
			Category:          models.CategoryFolkDance,
			Description:       "Rancho folclórico dance and performance",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryTraditionalCostume, models.CategoryMusicInstruments},
			TypicalRegions:    []models.PortugueseRegion{models.RegionMinho, models.RegionRibatejo},
			RelatedTraditions: []string{"rancho folclórico groups", "vira do Minho"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 72, CommunityRelevance: 84, TraditionalValue: 89,
				EducationalValue: 78, EmotionalResonance: 81,
				Description: "Folk dance groups are a backbone of diaspora cultural life",
			},
		},
		{
			Category:          models.CategoryTraditionalCostume,
			Description:       "Regional festive and working dress",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryFolkDance, models.CategoryTraditionalCrafts},
			TypicalRegions:    []models.PortugueseRegion{models.RegionMinho, models.RegionAzores},
			HistoricalPeriod:  "18th-20th century",
			RelatedTraditions: []string{"traje à vianesa", "filigree gold jewellery"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 80, CommunityRelevance: 70, TraditionalValue: 92,
				EducationalValue: 82, EmotionalResonance: 74,
				Description: "Costume detail encodes parish-level identity",
			},
		},
		{
			Category:          models.CategoryMaritimeHeritage,
			Description:       "Fishing, navigation and coastal life",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryArchitecture, models.CategoryTraditionalFood},
			TypicalRegions:    []models.PortugueseRegion{models.RegionAlgarve, models.RegionBeiraLitoral, models.RegionAzores},
			HistoricalPeriod:  "Age of Discovery onwards",
			RelatedTraditions: []string{"moliceiro boats", "fishing village processions"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 94, CommunityRelevance: 68, TraditionalValue: 84,
				EducationalValue: 90, EmotionalResonance: 76,
				Description: "The sea shaped Portuguese history and emigration alike",
			},
		},
		{
			Category:          models.CategoryArchitecture,
			Description:       "Manueline, pombaline and vernacular building",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryAzulejos, models.CategoryMaritimeHeritage},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto, models.RegionAlentejo},
			HistoricalPeriod:  "12th-20th century",
			RelatedTraditions: []string{"calçada portuguesa", "quinta estates"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 91, CommunityRelevance: 62, TraditionalValue: 80,
				EducationalValue: 93, EmotionalResonance: 66,
				Description: "Built heritage is the most photographed cultural register",
			},
		},
		{
			Category:          models.CategoryTraditionalCrafts,
			Description:       "Pottery, weaving, filigree and woodwork",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryAzulejos, models.CategoryTraditionalCostume},
			TypicalRegions:    []models.PortugueseRegion{models.RegionAlentejo, models.RegionTrasOsMontes, models.RegionMadeira},
			RelatedTraditions: []string{"barcelos rooster pottery", "arraiolos carpets", "bordado da Madeira"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 83, CommunityRelevance: 74, TraditionalValue: 94,
				EducationalValue: 85, EmotionalResonance: 72,
				Description: "Craft knowledge is held by a shrinking number of makers",
			},
			HighValue: true,
		},
		{
			Category:          models.CategoryReligiousArtifacts,
			Description:       "Devotional sculpture, ex-votos and church silver",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryReligiousFestival, models.CategoryTraditionalCrafts},
			TypicalRegions:    []models.PortugueseRegion{models.RegionBeiraAlta, models.RegionMinho},
			HistoricalPeriod:  "15th-19th century",
			RelatedTraditions: []string{"ex-voto offerings", "processional litters"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 90, CommunityRelevance: 66, TraditionalValue: 91,
				EducationalValue: 84, EmotionalResonance: 79,
				Description: "Devotional objects carry both artistic and spiritual weight",
			},
			HighValue: true,
		},
		{
			Category:          models.CategoryFamilyCelebration,
			Description:       "Weddings, baptisms and multigenerational gatherings",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryTraditionalFood, models.CategoryReligiousFestival},
			TypicalRegions:    nil,
			RelatedTraditions: []string{"matança do porco gatherings", "festa de baptizado"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 58, CommunityRelevance: 88, TraditionalValue: 76,
				EducationalValue: 64, EmotionalResonance: 95,
				Description: "Family photographs are the community's most personal archive",
			},
		},
		{
			Category:          models.CategoryWineCulture,
			Description:       "Vineyards, adegas and harvest traditions",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryTraditionalFood, models.CategoryMaritimeHeritage},
			TypicalRegions:    []models.PortugueseRegion{models.RegionDouro, models.RegionMinho, models.RegionMadeira},
			SeasonalContext:   "September harvest",
			RelatedTraditions: []string{"vindima grape harvest", "port wine lodges"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 81, CommunityRelevance: 72, TraditionalValue: 83,
				EducationalValue: 77, EmotionalResonance: 69,
				Description: "Wine regions anchor family histories of rural Portugal",
			},
		},
		{
			Category:          models.CategoryMusicInstruments,
			Description:       "Guitarra portuguesa, cavaquinho and regional percussion",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryFado, models.CategoryFolkDance},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionBeiraBaixa, models.RegionMadeira},
			RelatedTraditions: []string{"instrument luthiery", "tuna académica"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 76, CommunityRelevance: 71, TraditionalValue: 86,
				EducationalValue: 79, EmotionalResonance: 82,
				Description: "Instruments trace the sound of both fado and village festa",
			},
		},
		{
			Category:          models.CategorySportsCulture,
			Description:       "Football culture and traditional games",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryFamilyCelebration},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto},
			RelatedTraditions: []string{"club supporter houses", "jogo da malha"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 54, CommunityRelevance: 89, TraditionalValue: 60,
				EducationalValue: 52, EmotionalResonance: 87,
				Description: "Match days gather the diaspora like little else",
			},
		},
		{
			Category:          models.CategoryLiterature,
			Description:       "Poets, bookshops and written culture",
			SecondaryLeanings: []models.CulturalCategory{models.CategoryFado, models.CategoryArchitecture},
			TypicalRegions:    []models.PortugueseRegion{models.RegionLisboa, models.RegionPorto},
			HistoricalPeriod:  "16th century onwards",
			RelatedTraditions: []string{"Camões day readings", "livraria visits"},
			BaseSignificance: models.CulturalSignificance{
				HistoricalImportance: 87, CommunityRelevance: 58, TraditionalValue: 74,
				EducationalValue: 94, EmotionalResonance: 71,
				Description: "Literary heritage from Camões to Pessoa",
			},
		},
	}

	db := &CategoryDatabase{profiles: make(map[models.CulturalCategory]CategoryProfile, len(profiles))}
	for _, profile := range profiles {
		db.profiles[profile.Category] = profile
		db.ordered = append(db.ordered, profile.Category)
	}
	return db
}

// Profile returns the profile for a category, falling back to the family
// celebration profile for unknown input.
func (db *CategoryDatabase) Profile(category models.CulturalCategory) CategoryProfile {
	if profile, ok := db.profiles[category]; ok {
		return profile
	}
	return db.profiles[models.CategoryFamilyCelebration]
}

// ProfileAt returns the profile at a stable position, for seed-based lookup.
func (db *CategoryDatabase) ProfileAt(index int) CategoryProfile {
	return db.profiles[db.ordered[index%len(db.ordered)]]
}

// Len returns the number of category profiles.
func (db *CategoryDatabase) Len() int {
	return len(db.ordered)
}

// IsHighValue reports whether a category is in the designated high-value set
// (tiles, religious artifacts, traditional crafts).
func (db *CategoryDatabase) IsHighValue(category models.CulturalCategory) bool {
	return db.Profile(category).HighValue && db.Profile(category).Category == category
}
