package goods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Conor-Code-Logistic-Tech/brandability/pkg/errors"
)

func TestNewGoodService(t *testing.T) {
	gs, err := NewGoodService("clothing", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, gs.NiceClass)
	assert.False(t, gs.IsService())

	svc, err := NewGoodService("retail services", 35)
	require.NoError(t, err)
	assert.True(t, svc.IsService())
}

func TestGoodService_Validate(t *testing.T) {
	tests := []struct {
		name     string
		gs       GoodService
		wantCode apperrors.ErrorCode
	}{
		{"valid", GoodService{Term: "cosmetics", NiceClass: 3}, ""},
		{"class_lower_bound", GoodService{Term: "chemicals", NiceClass: 1}, ""},
		{"class_upper_bound", GoodService{Term: "legal services", NiceClass: 45}, ""},
		{"empty_term", GoodService{Term: "  ", NiceClass: 25}, apperrors.ErrCodeGSEmptyTerm},
		{"class_zero", GoodService{Term: "clothing", NiceClass: 0}, apperrors.ErrCodeGSNiceClassInvalid},
		{"class_too_high", GoodService{Term: "clothing", NiceClass: 46}, apperrors.ErrCodeGSNiceClassInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gs.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tt.wantCode))
			assert.True(t, apperrors.IsInvalidInput(err))
		})
	}
}

func validPair(score float64) Pair {
	return Pair{
		Applicant:       GoodService{Term: "clothing", NiceClass: 25},
		Opponent:        GoodService{Term: "footwear", NiceClass: 25},
		SimilarityScore: score,
	}
}

func TestPair_Validate(t *testing.T) {
	assert.NoError(t, validPair(0).Validate())
	assert.NoError(t, validPair(1).Validate())
	assert.NoError(t, validPair(0.42).Validate())

	for _, score := range []float64{-0.001, 1.001, 2} {
		err := validPair(score).Validate()
		require.Error(t, err, "score=%v", score)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeGSScoreInvalid))
	}

	bad := validPair(0.5)
	bad.Opponent.Term = ""
	assert.True(t, apperrors.IsCode(bad.Validate(), apperrors.ErrCodeGSEmptyTerm))
}
