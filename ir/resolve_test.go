package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterEffectiveOverridesTarget(t *testing.T) {
	target := &Parameter{Name: "q", In: ParameterInQuery, Schema: &Schema{Types: []string{"string"}}}
	override := &Parameter{In: ParameterInPath, AllowEmptyValue: true}

	effective, err := override.Effective(target)
	require.NoError(t, err)
	assert.Equal(t, "q", effective.Name, "unset override fields keep the target's value")
	assert.Equal(t, ParameterInPath, effective.In, "set override fields win")
	assert.True(t, effective.AllowEmptyValue)
	assert.Equal(t, ParameterInQuery, target.In, "target must not be mutated")
}

func TestParameterEffectiveNilOverride(t *testing.T) {
	target := &Parameter{Name: "q"}
	effective, err := (*Parameter)(nil).Effective(target)
	require.NoError(t, err)
	assert.Same(t, target, effective)
}

func TestHeaderEffectiveOverridesTarget(t *testing.T) {
	target := &Header{Description: "shared", Required: false}
	override := &Header{Required: true}

	effective, err := override.Effective(target)
	require.NoError(t, err)
	assert.Equal(t, "shared", effective.Description)
	assert.True(t, effective.Required)
	assert.False(t, target.Required, "target must not be mutated")
}

func TestResponseEffectiveOverridesTarget(t *testing.T) {
	target := &Response{Description: "ok", ContentPresent: false}
	override := &Response{Description: "overridden description"}

	effective, err := override.Effective(target)
	require.NoError(t, err)
	assert.Equal(t, "overridden description", effective.Description)
	assert.False(t, effective.ContentPresent)
}
