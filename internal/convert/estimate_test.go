package convert

import (
	"testing"

	"github.com/lerobotlab/lerobotlab/internal/model"
)

func TestEstimateConversionTime(t *testing.T) {
	tests := []struct {
		name        string
		totalFrames int64
		want        string
	}{
		{"sub-second rounds to zero", 500, "~0 seconds"},
		{"seconds bucket", 30000, "~30 seconds"},
		{"just under a minute", 59000, "~59 seconds"},
		{"minutes bucket", 120000, "~2.0 minutes"},
		{"fractional minutes", 90000, "~1.5 minutes"},
		{"hours bucket", 7200000, "~2.0 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &model.SelectionDocument{
				Metadata: model.Metadata{TotalFrames: tt.totalFrames},
			}
			got, ok := EstimateConversionTime(sel)
			if !ok {
				t.Fatalf("EstimateConversionTime() ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("EstimateConversionTime(%d frames) = %q, want %q", tt.totalFrames, got, tt.want)
			}
		})
	}
}

func TestEstimateConversionTime_AbsentFrames(t *testing.T) {
	sel := &model.SelectionDocument{}
	if _, ok := EstimateConversionTime(sel); ok {
		t.Error("EstimateConversionTime() ok = true for absent total_frames, want false")
	}
}

func TestEstimateConversionTime_Deterministic(t *testing.T) {
	sel := &model.SelectionDocument{
		Metadata: model.Metadata{TotalFrames: 696391},
	}
	first, _ := EstimateConversionTime(sel)
	second, _ := EstimateConversionTime(sel)
	if first != second {
		t.Errorf("EstimateConversionTime() not deterministic: %q vs %q", first, second)
	}
}
