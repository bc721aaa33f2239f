package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontSizeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  FontSize
	}{
		{`"small"`, FontSizeSmall},
		{`"normal"`, FontSizeNormal},
		{`"large"`, FontSizeLarge},
		{`2`, FontSizeLarge},
	}
	for _, tt := range tests {
		var f FontSize
		require.NoError(t, json.Unmarshal([]byte(tt.input), &f), tt.input)
		assert.Equal(t, tt.want, f, tt.input)
	}
}

func TestFontSizeUnmarshalRejectsUnknown(t *testing.T) {
	for _, input := range []string{`"huge"`, `"SMALL"`, `""`, `7`, `-1`} {
		var f FontSize
		err := json.Unmarshal([]byte(input), &f)
		assert.Error(t, err, "input %s must not unmarshal", input)
	}
}

func TestJustificationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Justification
	}{
		{`"left"`, JustifyLeft},
		{`"center"`, JustifyCenter},
		{`"right"`, JustifyRight},
		{`1`, JustifyCenter},
	}
	for _, tt := range tests {
		var j Justification
		require.NoError(t, json.Unmarshal([]byte(tt.input), &j), tt.input)
		assert.Equal(t, tt.want, j, tt.input)
	}
}

func TestJustificationUnmarshalRejectsUnknown(t *testing.T) {
	for _, input := range []string{`"middle"`, `"Left"`, `""`, `3`} {
		var j Justification
		err := json.Unmarshal([]byte(input), &j)
		assert.Error(t, err, "input %s must not unmarshal", input)
	}
}

func TestEnumJSONRoundTrip(t *testing.T) {
	for _, f := range []FontSize{FontSizeSmall, FontSizeNormal, FontSizeLarge} {
		data, err := json.Marshal(f)
		require.NoError(t, err)
		var back FontSize
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, f, back)
	}
	for _, j := range []Justification{JustifyLeft, JustifyCenter, JustifyRight} {
		data, err := json.Marshal(j)
		require.NoError(t, err)
		var back Justification
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, j, back)
	}
}
