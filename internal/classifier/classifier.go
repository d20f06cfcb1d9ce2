// Package classifier labels crop images with a plant-health class.
package classifier

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	LabelHealthy = "healthy"

	mockConfidence = 0.85
	mockMessage    = "Mock analysis - replace with actual model"
)

// PlantClasses are the labels a classifier may report.
var PlantClasses = []string{
	"healthy",
	"bacterial_spot",
	"early_blight",
	"late_blight",
	"leaf_mold",
	"septoria_leaf_spot",
	"spider_mites",
	"target_spot",
	"mosaic_virus",
	"yellow_leaf_curl_virus",
}

// Image is an uploaded picture, already checked to be decodable.
type Image struct {
	Data   []byte
	Format string
}

// DecodeImage checks that data is a jpeg, png, gif, bmp or webp image and
// records its format.
func DecodeImage(data []byte) (Image, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return Image{Data: data, Format: format}, nil
}

type Classifier interface {
	Classify(ctx context.Context, img Image) (models.Diagnosis, error)
}

// Fixed reports every image as healthy.
type Fixed struct{}

func (Fixed) Classify(context.Context, Image) (models.Diagnosis, error) {
	return models.Diagnosis{
		Disease:    LabelHealthy,
		Confidence: mockConfidence,
		Message:    mockMessage,
	}, nil
}

func knownClass(label string) bool {
	for _, c := range PlantClasses {
		if c == label {
			return true
		}
	}
	return false
}
