package analyzer

import (
	"context"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// culturalClassifier assigns categories from the curated database. Selection
// is deterministic per image reference until a trained model is wired in
// behind the same interface.
type culturalClassifier struct {
	db      *CategoryDatabase
	pattern PatternDetector
}

// NewCulturalClassifier creates the classifier over the shared database.
func NewCulturalClassifier(db *CategoryDatabase) CulturalClassifier {
	return &culturalClassifier{
		db:      db,
		pattern: NewGridPatternDetector(),
	}
}

func (c *culturalClassifier) Classify(ctx context.Context, ref ImageRef) (models.CulturalClassification, error) {
	if err := ctx.Err(); err != nil {
		return models.CulturalClassification{}, err
	}

	profile := c.db.ProfileAt(refIndex(ref.URL, "classify", c.db.Len()))

	// A detected tile grid overrides the seeded pick; azulejo panels are the
	// one signature we can read straight off the pixels.
	if ref.Img != nil && profile.Category != models.CategoryAzulejos && c.pattern.DetectTileGrid(ref.Img) {
		profile = c.db.Profile(models.CategoryAzulejos)
	}

	classification := models.CulturalClassification{
		PrimaryCategory:   profile.Category,
		HistoricalPeriod:  profile.HistoricalPeriod,
		Significance:      profile.BaseSignificance,
		RelatedTraditions: append([]string(nil), profile.RelatedTraditions...),
		SeasonalContext:   profile.SeasonalContext,
	}

	if len(profile.TypicalRegions) > 0 {
		classification.RegionalOrigin = profile.TypicalRegions[refIndex(ref.URL, "region", len(profile.TypicalRegions))]
	}

	// Secondary categories come from the profile leanings, never repeating
	// the primary
	for _, secondary := range profile.SecondaryLeanings {
		if secondary != classification.PrimaryCategory {
			classification.SecondaryCategories = append(classification.SecondaryCategories, secondary)
		}
	}

	return classification, nil
}

// DefaultClassification is the degraded fallback used when classification
// cannot run.
func DefaultClassification() models.CulturalClassification {
	return models.CulturalClassification{
		PrimaryCategory: models.CategoryFamilyCelebration,
		Significance: models.CulturalSignificance{
			Description: "Classification unavailable; defaulted to family celebration",
		},
	}
}
