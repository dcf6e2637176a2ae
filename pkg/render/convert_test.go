package render

import (
	"context"
	"testing"

	"github.com/matzehuels/pagen/pkg/errors"
)

func TestToPNGRejectsBadScale(t *testing.T) {
	_, err := ToPNG(context.Background(), []byte("<svg/>"), 0)
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Fatalf("ToPNG(scale=0) error = %v, want INVALID_RANGE", err)
	}
}

func TestToPDFWithoutConverter(t *testing.T) {
	if CanConvert() {
		t.Skip("rsvg-convert installed")
	}
	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}
