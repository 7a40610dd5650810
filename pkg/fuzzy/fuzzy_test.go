package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      float64
	}{
		{
			name:      "exact match",
			query:     "Juan Garcia",
			candidate: "juan garcia",
			want:      1.0,
		},
		{
			name:      "first name token match",
			query:     "Juan",
			candidate: "Juan Garcia",
			want:      0.85,
		},
		{
			name:      "partial token match",
			query:     "jua",
			candidate: "Juan Garcia",
			want:      0.75 * 3.0 / 4.0,
		},
		{
			name:      "transposition scored by character ratio",
			query:     "Jaun",
			candidate: "Juan",
			want:      0.75,
		},
		{
			name:      "no common characters",
			query:     "xyz",
			candidate: "Juan",
			want:      0.0,
		},
		{
			name:      "empty query",
			query:     "",
			candidate: "Juan",
			want:      0.0,
		},
		{
			name:      "whitespace and case are normalized",
			query:     "  JOSÉ  ",
			candidate: "josé",
			want:      1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.query, tt.candidate), 1e-9)
		})
	}
}

func TestScoreOrdersTypoAboveMismatch(t *testing.T) {
	typo := Score("Juan", "Jaun")
	other := Score("Juan", "Pedro")
	assert.Greater(t, typo, other)
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "maria", b: "maria", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "maria", b: "", want: 0.0},
		{name: "symmetric overlap", a: "abcd", b: "acbd", want: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Ratio(tt.b, tt.a), 1e-9)
		})
	}
}
