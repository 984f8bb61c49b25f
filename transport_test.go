package slipo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slipo "github.com/slipo-eu/slipo-go"
)

// TestEnvelope_MissingResult verifies that a success envelope without a
// result field is not an error; the caller gets the zero value.
func TestEnvelope_MissingResult(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{"success": true})
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	profiles, err := client.Profiles(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Nil(t, profiles)
}

// TestEnvelope_UnexpectedResultShape verifies that a result field of a
// shape the caller does not expect is discarded rather than reported as
// an error.
func TestEnvelope_UnexpectedResultShape(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, okEnvelope("not an object"))
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	execution, err := client.ProcessStatus(context.Background(), 10, 1)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, execution)
	assert.Zero(t, execution.ID)
}

// TestEnvelope_ErrorsArray verifies the error message is taken from
// errors[0].description when the errors array is present.
func TestEnvelope_ErrorsArray(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{
			"success": false,
			"errors": []map[string]interface{}{
				{"code": "ResourceNotFound", "description": "resource 42 does not exist"},
				{"code": "Other", "description": "secondary message"},
			},
		})
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	_, err := client.CatalogQuery(context.Background(), slipo.QueryOptions{})

	// Assert
	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeAPI, apiErr.Code)
	assert.Equal(t, "resource 42 does not exist", apiErr.Message)
}

// TestEnvelope_ErrorField verifies the error field is used when the
// errors array is absent.
func TestEnvelope_ErrorField(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{
			"success": false,
			"error":   "access denied",
		})
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	_, err := client.CatalogQuery(context.Background(), slipo.QueryOptions{})

	// Assert
	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeAPI, apiErr.Code)
	assert.Equal(t, "access denied", apiErr.Message)
}

// TestEnvelope_FailureWithOKStatus verifies that success=false is a
// failure even when the HTTP status is 200.
func TestEnvelope_FailureWithOKStatus(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, map[string]interface{}{
			"success": false,
			"error":   "operation failed",
		})
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	_, err := client.Profiles(context.Background())

	// Assert
	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeAPI, apiErr.Code)
	assert.Equal(t, "operation failed", apiErr.Message)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

// TestEnvelope_MalformedJSON verifies that an unparseable response body
// is converted to the uniform error rather than leaking a decoding
// error.
func TestEnvelope_MalformedJSON(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer server.Close()

	// Act
	client := testClient(t, server.URL)
	_, err := client.Profiles(context.Background())

	// Assert
	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeDecode, apiErr.Code)
	assert.Error(t, apiErr.Unwrap())
}

// TestEnvelope_TransportFailure verifies a connection failure is
// converted to the uniform error.
func TestEnvelope_TransportFailure(t *testing.T) {
	// Arrange: a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := testClient(t, server.URL)
	server.Close()

	// Act
	_, err := client.Profiles(context.Background())

	// Assert
	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeTransport, apiErr.Code)
	assert.Error(t, apiErr.Unwrap())
}
