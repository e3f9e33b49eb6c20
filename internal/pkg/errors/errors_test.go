package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithDetailsDoesNotMutateShared(t *testing.T) {
	withDetails := ErrInvalidCoordinates.WithDetails(map[string]interface{}{"point_index": 3})

	assert.Equal(t, 3, withDetails.Details["point_index"])
	assert.Nil(t, ErrInvalidCoordinates.Details)
	assert.Equal(t, http.StatusBadRequest, withDetails.StatusCode)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("get property: %w", ErrPropertyNotFound)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "PROPERTY_NOT_FOUND", appErr.Code)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "LAYER_NOT_FOUND: Layer data not found", ErrLayerNotFound.Error())
}
