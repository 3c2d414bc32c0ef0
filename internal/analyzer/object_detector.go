package analyzer

import (
	"context"
	"fmt"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// Reference frame for seeded detections. Boxes are scaled to the actual
// image dimensions when metadata carries them.
const (
	detectionFrameWidth  = 1280
	detectionFrameHeight = 960
)

type objectTemplate struct {
	label             models.BilingualText
	description       models.BilingualText
	confidence        int
	culturalRelevance int
	box               models.BoundingBox
	relatedConcepts   []string
}

// objectDetector returns seeded detections until a vision model replaces it
// behind the same interface.
type objectDetector struct {
	scenes [][]objectTemplate
}

// NewObjectDetector creates the detector with its static scene table.
func NewObjectDetector() ObjectDetector {
	return &objectDetector{scenes: objectScenes()}
}

func (d *objectDetector) Detect(ctx context.Context, ref ImageRef) ([]models.DetectedObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scene := d.scenes[refIndex(ref.URL, "detect", len(d.scenes))]
	seed := refSeed(ref.URL)

	objects := make([]models.DetectedObject, 0, len(scene))
	for i, tpl := range scene {
		box := tpl.box
		if ref.Metadata != nil && ref.Metadata.Width > 0 && ref.Metadata.Height > 0 {
			box = scaleBox(box, ref.Metadata.Width, ref.Metadata.Height)
		}
		objects = append(objects, models.DetectedObject{
			ID:                fmt.Sprintf("obj-%08x-%d", seed, i),
			Label:             tpl.label,
			Confidence:        tpl.confidence,
			Box:               box,
			CulturalRelevance: tpl.culturalRelevance,
			Description:       tpl.description,
			RelatedConcepts:   tpl.relatedConcepts,
		})
	}
	return objects, nil
}

// scaleBox maps a reference-frame box onto actual image dimensions, keeping
// it non-degenerate and inside the image.
func scaleBox(box models.BoundingBox, width, height int) models.BoundingBox {
	scaled := models.BoundingBox{
		X:      box.X * width / detectionFrameWidth,
		Y:      box.Y * height / detectionFrameHeight,
		Width:  box.Width * width / detectionFrameWidth,
		Height: box.Height * height / detectionFrameHeight,
	}
	if scaled.Width < 1 {
		scaled.Width = 1
	}
	if scaled.Height < 1 {
		scaled.Height = 1
	}
	if scaled.X+scaled.Width > width {
		scaled.X = width - scaled.Width
	}
	if scaled.Y+scaled.Height > height {
		scaled.Y = height - scaled.Height
	}
	if scaled.X < 0 {
		scaled.X = 0
	}
	if scaled.Y < 0 {
		scaled.Y = 0
	}
	return scaled
}

func objectScenes() [][]objectTemplate {
	return [][]objectTemplate{
		{
			{
				label:       models.BilingualText{Portuguese: "painel de azulejos", English: "azulejo tile panel"},
				description: models.BilingualText{Portuguese: "Painel de azulejos azuis e brancos do século XVIII", English: "Blue and white tile panel in 18th century style"},
				confidence:  91, culturalRelevance: 95,
				box:             models.BoundingBox{X: 120, Y: 80, Width: 640, Height: 480},
				relatedConcepts: []string{"ceramics", "church facade", "decorative art"},
			},
			{
				label:       models.BilingualText{Portuguese: "porta de igreja", English: "church doorway"},
				description: models.BilingualText{Portuguese: "Portal de pedra lavrada", English: "Carved stone portal framing the panel"},
				confidence:  78, culturalRelevance: 70,
				box:             models.BoundingBox{X: 40, Y: 40, Width: 300, Height: 820},
				relatedConcepts: []string{"architecture", "granite carving"},
			},
		},
		{
			{
				label:       models.BilingualText{Portuguese: "guitarra portuguesa", English: "Portuguese guitar"},
				description: models.BilingualText{Portuguese: "Guitarra de Lisboa com doze cordas", English: "Twelve-string Lisbon guitar"},
				confidence:  88, culturalRelevance: 92,
				box:             models.BoundingBox{X: 420, Y: 300, Width: 380, Height: 360},
				relatedConcepts: []string{"fado", "luthiery"},
			},
			{
				label:       models.BilingualText{Portuguese: "xaile preto", English: "black shawl"},
				description: models.BilingualText{Portuguese: "Xaile tradicional de fadista", English: "Traditional fado singer's shawl"},
				confidence:  72, culturalRelevance: 80,
				box:             models.BoundingBox{X: 180, Y: 160, Width: 260, Height: 420},
				relatedConcepts: []string{"fado", "costume"},
			},
			{
				label:       models.BilingualText{Portuguese: "candeeiro de rua", English: "street lamp"},
				description: models.BilingualText{Portuguese: "Candeeiro de ferro em beco de Alfama", English: "Iron lamp in an Alfama alley"},
				confidence:  65, culturalRelevance: 45,
				box:             models.BoundingBox{X: 900, Y: 60, Width: 120, Height: 400},
				relatedConcepts: []string{"Lisbon", "old town"},
			},
		},
		{
			{
				label:       models.BilingualText{Portuguese: "travessa de bacalhau", English: "platter of bacalhau"},
				description: models.BilingualText{Portuguese: "Bacalhau à lagareiro com batatas a murro", English: "Roast salted cod with punched potatoes"},
				confidence:  85, culturalRelevance: 90,
				box:             models.BoundingBox{X: 260, Y: 380, Width: 520, Height: 320},
				relatedConcepts: []string{"festive cooking", "family table"},
			},
			{
				label:       models.BilingualText{Portuguese: "toalha bordada", English: "embroidered tablecloth"},
				description: models.BilingualText{Portuguese: "Toalha de linho com bordado regional", English: "Linen cloth with regional embroidery"},
				confidence:  70, culturalRelevance: 68,
				box:             models.BoundingBox{X: 0, Y: 300, Width: 1280, Height: 660},
				relatedConcepts: []string{"crafts", "household linen"},
			},
		},
		{
			{
				label:       models.BilingualText{Portuguese: "andor de procissão", English: "procession litter"},
				description: models.BilingualText{Portuguese: "Andor florido com imagem do santo padroeiro", English: "Flower-decked litter carrying the patron saint"},
				confidence:  89, culturalRelevance: 94,
				box:             models.BoundingBox{X: 340, Y: 120, Width: 560, Height: 620},
				relatedConcepts: []string{"romaria", "devotion"},
			},
			{
				label:       models.BilingualText{Portuguese: "colcha na varanda", English: "balcony bedspread"},
				description: models.BilingualText{Portuguese: "Colcha pendurada em dia de festa", English: "Bedspread hung out for the feast day"},
				confidence:  74, culturalRelevance: 66,
				box:             models.BoundingBox{X: 60, Y: 40, Width: 280, Height: 240},
				relatedConcepts: []string{"festa", "street decoration"},
			},
			{
				label:       models.BilingualText{Portuguese: "banda filarmónica", English: "philharmonic band"},
				description: models.BilingualText{Portuguese: "Banda da terra a acompanhar a procissão", English: "Village band accompanying the procession"},
				confidence:  81, culturalRelevance: 78,
				box:             models.BoundingBox{X: 120, Y: 560, Width: 900, Height: 360},
				relatedConcepts: []string{"music", "community"},
			},
		},
		{
			{
				label:       models.BilingualText{Portuguese: "barco moliceiro", English: "moliceiro boat"},
				description: models.BilingualText{Portuguese: "Barco pintado da ria de Aveiro", English: "Painted boat from the Aveiro lagoon"},
				confidence:  86, culturalRelevance: 88,
				box:             models.BoundingBox{X: 180, Y: 420, Width: 820, Height: 300},
				relatedConcepts: []string{"maritime", "Aveiro"},
			},
		},
		{
			{
				label:       models.BilingualText{Portuguese: "traje à vianesa", English: "Viana festive costume"},
				description: models.BilingualText{Portuguese: "Traje de lavradeira com lenço e avental bordados", English: "Festive dress with embroidered scarf and apron"},
				confidence:  90, culturalRelevance: 93,
				box:             models.BoundingBox{X: 400, Y: 100, Width: 420, Height: 760},
				relatedConcepts: []string{"Minho", "folk costume", "gold filigree"},
			},
			{
				label:       models.BilingualText{Portuguese: "coração de Viana", English: "Viana heart pendant"},
				description: models.BilingualText{Portuguese: "Coração de filigrana em ouro", English: "Gold filigree heart pendant"},
				confidence:  83, culturalRelevance: 89,
				box:             models.BoundingBox{X: 560, Y: 300, Width: 120, Height: 140},
				relatedConcepts: []string{"filigree", "jewellery"},
			},
		},
	}
}
