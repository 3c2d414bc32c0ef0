package analyzer

import (
	"context"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

type textFragment struct {
	text       string
	language   string // pt, en, mixed
	box        models.BoundingBox
	confidence int
	fontStyle  string
}

// textExtractor returns seeded extractions, partitioned by language. The
// glossary pass over the Portuguese bucket is real; the fragments themselves
// stand in for an OCR engine.
type textExtractor struct {
	glossary *Glossary
	scenes   [][]textFragment
}

// NewTextExtractor creates the extractor over the shared glossary.
func NewTextExtractor(glossary *Glossary) TextExtractor {
	return &textExtractor{
		glossary: glossary,
		scenes:   textScenes(),
	}
}

func (t *textExtractor) ExtractText(ctx context.Context, ref ImageRef) (models.ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return models.ExtractedText{}, err
	}

	fragments := t.scenes[refIndex(ref.URL, "extract", len(t.scenes))]
	return t.partition(fragments), nil
}

// partition places every fragment in exactly one language bucket and runs the
// cultural-term pass over the Portuguese bucket.
func (t *textExtractor) partition(fragments []textFragment) models.ExtractedText {
	extracted := models.ExtractedText{
		PortugueseText: []string{},
		EnglishText:    []string{},
		MixedText:      []string{},
	}

	counts := map[string]int{}
	for _, fragment := range fragments {
		switch fragment.language {
		case "pt":
			extracted.PortugueseText = append(extracted.PortugueseText, fragment.text)
		case "mixed":
			extracted.MixedText = append(extracted.MixedText, fragment.text)
		default:
			extracted.EnglishText = append(extracted.EnglishText, fragment.text)
		}
		counts[fragment.language]++

		extracted.Regions = append(extracted.Regions, models.TextRegion{
			Text:       fragment.text,
			Language:   fragment.language,
			Box:        fragment.box,
			Confidence: fragment.confidence,
			FontStyle:  fragment.fontStyle,
		})
	}

	extracted.LanguageDetection = detectLanguage(counts, len(fragments))

	for _, fragment := range extracted.PortugueseText {
		extracted.CulturalTerms = append(extracted.CulturalTerms, t.glossary.FindTerms(fragment)...)
	}

	return extracted
}

// detectLanguage picks the dominant language. An empty extraction defaults to
// English with confidence 0; downstream logic must not read that default as
// a positive non-Portuguese finding.
func detectLanguage(counts map[string]int, total int) models.LanguageDetection {
	if total == 0 {
		return models.LanguageDetection{PrimaryLanguage: "en", Confidence: 0}
	}

	primary, best := "en", counts["en"]
	if counts["pt"] >= best {
		primary, best = "pt", counts["pt"]
	}
	if counts["mixed"] > best {
		primary, best = "mixed", counts["mixed"]
	}

	detection := models.LanguageDetection{
		PrimaryLanguage: primary,
		Confidence:      ClampScore(100 * best / total),
	}
	for _, language := range []string{"pt", "en", "mixed"} {
		if language != primary && counts[language] > 0 {
			detection.SecondaryLanguages = append(detection.SecondaryLanguages, language)
		}
	}
	return detection
}

// EmptyExtraction is the degraded fallback when text extraction cannot run.
func EmptyExtraction() models.ExtractedText {
	return models.ExtractedText{
		PortugueseText:    []string{},
		EnglishText:       []string{},
		MixedText:         []string{},
		LanguageDetection: models.LanguageDetection{PrimaryLanguage: "en", Confidence: 0},
	}
}

func textScenes() [][]textFragment {
	return [][]textFragment{
		{
			{text: "Casa do Fado e da Guitarra Portuguesa", language: "pt",
				box: models.BoundingBox{X: 200, Y: 60, Width: 700, Height: 80}, confidence: 90, fontStyle: "serif"},
			{text: "Founded 1998", language: "en",
				box: models.BoundingBox{X: 220, Y: 150, Width: 240, Height: 40}, confidence: 84},
			{text: "A noite de fado traz sempre saudade", language: "pt",
				box: models.BoundingBox{X: 180, Y: 700, Width: 760, Height: 60}, confidence: 77, fontStyle: "handwritten"},
		},
		{
			{text: "Festa de Santo António 2024", language: "pt",
				box: models.BoundingBox{X: 120, Y: 40, Width: 680, Height: 90}, confidence: 93, fontStyle: "display"},
			{text: "Sardinhas assadas e manjerico for everyone", language: "mixed",
				box: models.BoundingBox{X: 140, Y: 160, Width: 820, Height: 50}, confidence: 71},
			{text: "Live music from 7pm", language: "en",
				box: models.BoundingBox{X: 140, Y: 230, Width: 420, Height: 40}, confidence: 88},
		},
		{
			{text: "Fábrica de azulejo fundada em 1865", language: "pt",
				box: models.BoundingBox{X: 300, Y: 820, Width: 620, Height: 50}, confidence: 68, fontStyle: "painted"},
		},
		{
			// Photographs of objects and landscapes often carry no text at all
		},
		{
			{text: "Vinho do Porto - Douro", language: "pt",
				box: models.BoundingBox{X: 480, Y: 380, Width: 320, Height: 70}, confidence: 90, fontStyle: "label"},
			{text: "Product of Portugal", language: "en",
				box: models.BoundingBox{X: 500, Y: 470, Width: 280, Height: 30}, confidence: 95, fontStyle: "label"},
			{text: "Reserva especial da vindima", language: "pt",
				box: models.BoundingBox{X: 490, Y: 510, Width: 300, Height: 30}, confidence: 82, fontStyle: "label"},
		},
	}
}
