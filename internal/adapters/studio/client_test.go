package studio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/studiograph/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		AccountSID: "AC123",
		AuthToken:  "secret",
		HTTPClient: http.DefaultClient,
		Logger:     logging.NewNop(),
	}
}

func TestClientFetch(t *testing.T) {
	t.Run("Decodes Flow And Sends Basic Auth", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "AC123", user)
			assert.Equal(t, "secret", pass)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"sid": "FW123",
				"friendly_name": "Support Line",
				"status": "published",
				"date_created": "2024-03-01T10:00:00Z",
				"definition": {"states": [{"name": "Trigger", "type": "trigger"}]}
			}`))
		}))
		defer srv.Close()

		flow, err := newTestClient(srv.URL).Fetch(context.Background(), "FW123")
		require.NoError(t, err)

		assert.Equal(t, "/v2/Flows/FW123", gotPath)
		assert.Equal(t, "Support Line", flow.FriendlyName)
		assert.Equal(t, "published", flow.Status)
		assert.Contains(t, flow.Definition, "states")
	})

	t.Run("Non-200 Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such flow", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Fetch(context.Background(), "FW404")
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Fetch(context.Background(), "FW123")
		assert.ErrorContains(t, err, "decoding flow")
	})
}
