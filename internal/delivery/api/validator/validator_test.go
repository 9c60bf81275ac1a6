package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Query  string `validate:"required"`
	Method string `validate:"omitempty,oneof=text call"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Query: "Cairo"}))
	require.NoError(t, v.Validate(&sample{Query: "Cairo", Method: "call"}))

	err := v.Validate(&sample{Method: "fax"})
	require.Error(t, err)
	assert.Equal(t, "query is required; method must be one of: text call", err.Error())
}
