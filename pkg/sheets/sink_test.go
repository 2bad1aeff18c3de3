package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func newTestSink(t *testing.T, handler http.HandlerFunc) (*Sink, *httptest.Server) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	srv, err := sheets.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithoutAuthentication())
	require.NoError(t, err)

	return &Sink{service: srv, spreadsheetID: "sheet-1", writeRange: "Sheet1!A:K"}, server
}

func TestAppendRow_Success(t *testing.T) {
	var gotURL string
	var gotQuery map[string][]string
	var gotBody struct {
		Values [][]interface{} `json:"values"`
	}

	sink, _ := newTestSink(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Path
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"updates":{"updatedRows":1,"updatedRange":"Sheet1!A5:K5"}}`))
	})

	row := []string{"Jane Doe, CEO", "", "", "Acme", "Robots", "Logistics", "$2M", "", "", "", ""}
	count, err := sink.AppendRow(context.Background(), row)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.True(t, strings.Contains(gotURL, "sheet-1"), "request targets the configured spreadsheet, got %s", gotURL)
	assert.Equal(t, []string{"USER_ENTERED"}, gotQuery["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, gotQuery["insertDataOption"])

	require.Len(t, gotBody.Values, 1, "exactly one row per append")
	require.Len(t, gotBody.Values[0], 11)
	assert.Equal(t, "Jane Doe, CEO", gotBody.Values[0][0])
	assert.Equal(t, "", gotBody.Values[0][1])
}

func TestAppendRow_ProviderError(t *testing.T) {
	sink, _ := newTestSink(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	})

	_, err := sink.AppendRow(context.Background(), []string{"a"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAppend)
}

func TestAppendRow_MissingUpdates(t *testing.T) {
	sink, _ := newTestSink(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	count, err := sink.AppendRow(context.Background(), []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
