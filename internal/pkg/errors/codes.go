package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates. Latitude must be between -90 and 90, longitude between -180 and 180",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidLayer = New(
		"INVALID_LAYER",
		"Invalid layer",
		http.StatusBadRequest,
	)

	ErrLayerNotFound = New(
		"LAYER_NOT_FOUND",
		"Layer data not found",
		http.StatusNotFound,
	)

	ErrPropertyNotFound = New(
		"PROPERTY_NOT_FOUND",
		"Property not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrUpstreamError = New(
		"UPSTREAM_ERROR",
		"Upstream service request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
