package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
	"github.com/Conor-Code-Logistic-Tech/brandability/pkg/types/trademark"
)

func TestCategoryForScore_Bands(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  trademark.Category
	}{
		{"zero", 0.0, trademark.CategoryDissimilar},
		{"just_below_low", 0.1999, trademark.CategoryDissimilar},
		{"low_boundary", 0.2, trademark.CategoryLow},
		{"mid_low", 0.3, trademark.CategoryLow},
		{"moderate_boundary", 0.4, trademark.CategoryModerate},
		{"mid_moderate", 0.5, trademark.CategoryModerate},
		{"high_boundary", 0.6, trademark.CategoryHigh},
		{"just_below_identical", 0.7999, trademark.CategoryHigh},
		{"identical_boundary", 0.8, trademark.CategoryIdentical},
		{"one", 1.0, trademark.CategoryIdentical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CategoryForScore(tt.score)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryForScore_RejectsOutOfRange(t *testing.T) {
	for _, score := range []float64{-0.01, -1, 1.01, 2} {
		_, err := CategoryForScore(score)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMarkScoreInvalid))
		assert.True(t, apperrors.IsInvalidInput(err))
	}
}

func TestCategoryForScore_Monotonic(t *testing.T) {
	prev := trademark.CategoryDissimilar
	for s := 0.0; s <= 1.0; s += 0.01 {
		got, err := CategoryForScore(s)
		require.NoError(t, err)
		assert.True(t, got.AtLeast(prev), "category must not decrease as score rises (score=%v)", s)
		prev = got
	}
}

func TestApplyOverallFloor(t *testing.T) {
	tests := []struct {
		name     string
		visual   float64
		aural    float64
		proposed trademark.Category
		want     trademark.Category
	}{
		{"both_identity_floors_to_identical", 0.9, 0.9, trademark.CategoryDissimilar, trademark.CategoryIdentical},
		{"visual_only_floors_to_high", 0.85, 0.3, trademark.CategoryLow, trademark.CategoryHigh},
		{"aural_only_floors_to_high", 0.3, 0.85, trademark.CategoryDissimilar, trademark.CategoryHigh},
		{"proposed_above_floor_kept", 0.85, 0.1, trademark.CategoryIdentical, trademark.CategoryIdentical},
		{"no_floor_below_boundary", 0.5, 0.5, trademark.CategoryModerate, trademark.CategoryModerate},
		{"boundary_is_exclusive", 0.8, 0.8, trademark.CategoryLow, trademark.CategoryLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyOverallFloor(tt.visual, tt.aural, tt.proposed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyOverallFloor_Errors(t *testing.T) {
	_, err := ApplyOverallFloor(1.5, 0.5, trademark.CategoryLow)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMarkScoreInvalid))

	_, err = ApplyOverallFloor(0.5, 0.5, trademark.Category("huge"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMarkCategoryInvalid))
}
