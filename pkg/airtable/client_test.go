package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	c := New("appBase", "Terms", "key")
	c.BaseURL = serverURL
	return c
}

func TestFetchAllFollowsOffset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		switch r.URL.Query().Get("offset") {
		case "":
			fmt.Fprint(w, `{"records":[{"id":"rec1","fields":{"id":"1","name":"Alpha"}}],"offset":"page2"}`)
		case "page2":
			fmt.Fprint(w, `{"records":[{"id":"rec2","fields":{"id":"2","name":"Beta"}}]}`)
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].Fields["name"])
	assert.Equal(t, "Beta", records[1].Fields["name"])
}

func TestFetchAllSurfacesRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"RATE_LIMIT"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAll(context.Background())
	assert.ErrorContains(t, err, "status 429")
}

func TestPushCreatesRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var payload struct {
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Test Act", payload.Fields["name"])
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"recNew","fields":{"name":"Test Act"}}`)
	}))
	defer server.Close()

	record, err := newTestClient(server.URL).Push(context.Background(), map[string]string{"name": "Test Act"})
	require.NoError(t, err)
	assert.Equal(t, "recNew", record.ID)
}

func TestDeleteAllIteratesUntilEmpty(t *testing.T) {
	var mu sync.Mutex
	remaining := []string{"rec1", "rec2", "rec3"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if r.Method == http.MethodDelete {
			id := r.URL.Path[len(r.URL.Path)-4:]
			kept := remaining[:0]
			for _, rec := range remaining {
				if rec != id {
					kept = append(kept, rec)
				}
			}
			remaining = kept
			fmt.Fprint(w, `{"deleted":true}`)
			return
		}
		records := make([]Record, 0, len(remaining))
		for _, id := range remaining {
			records = append(records, Record{ID: id, Fields: map[string]string{}})
		}
		json.NewEncoder(w).Encode(listResponse{Records: records})
	}))
	defer server.Close()

	err := newTestClient(server.URL).DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "plain text", Sanitize("plain text"))
	assert.Equal(t, `line\nbreak`, Sanitize("line\nbreak"))
	assert.Equal(t, `\u00e9tat`, Sanitize("état"))
	// Quotes pass through bare; backslashes are still escaped.
	assert.Equal(t, `say "hi"`, Sanitize(`say "hi"`))
	assert.Equal(t, `back\\slash "q"`, Sanitize(`back\slash "q"`))
}
