package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInvalidRow(t *testing.T) {
	err := NewInvalidRow("empty column name")
	assert.Equal(t, ErrorTypeInvalidRow, err.Type)
	assert.True(t, IsType(err, ErrorTypeInvalidRow))
}

func TestWrapInvalidRow(t *testing.T) {
	cause := errors.New("boom")
	err := WrapInvalidRow(cause, "failed to convert row")
	assert.Equal(t, ErrorTypeInvalidRow, err.Type)
	assert.Equal(t, cause, err.Cause)
}

func TestNewUnknownDataType(t *testing.T) {
	err := NewUnknownDataType("BOOLEAN", "")
	assert.Equal(t, ErrorTypeUnknownDataType, err.Type)
	assert.Contains(t, err.Message, "BOOLEAN")
}
