package generator

import (
	"bytes"
	"strings"
	"testing"

	"shenanigigs/jobstats/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptCount(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       int
		wantNotice bool
	}{
		{"explicit", "50\n", 50, false},
		{"surrounding spaces", "  75  \n", 75, false},
		{"zero", "0\n", 0, false},
		{"no trailing newline", "12", 12, false},
		{"empty line", "\n", 200, true},
		{"end of input", "", 200, true},
		{"whitespace only", "   \n", 200, true},
		{"not a number", "lots\n", 200, true},
		{"fraction", "2.5\n", 200, true},
		{"negative", "-5\n", 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := PromptCount(strings.NewReader(tt.input), &out, 200)

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "How many job listings to generate? (default: 200):")
			if tt.wantNotice {
				assert.Contains(t, out.String(), "Using default: 200 jobs")
			} else {
				assert.NotContains(t, out.String(), "Using default")
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount(" 30 ")
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	_, err = ParseCount("thirty")
	assert.True(t, errors.IsType(err, errors.ErrTypeInvalidInput))

	_, err = ParseCount("-1")
	assert.True(t, errors.IsType(err, errors.ErrTypeInvalidInput))
}
