package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// newJiraServer fakes /rest/api/3/user/search. users maps a query to the
// response array; a missing query answers with status.
func newJiraServer(t *testing.T, users map[string][]jiraUser, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != userSearchPath {
			http.NotFound(w, r)
			return
		}
		found, ok := users[r.URL.Query().Get("query")]
		if !ok {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"errorMessages":["nope"]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(found)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_SearchUsers(t *testing.T) {
	var gotAuth, gotAccept, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(`[
			{"accountId":"5b10a2844c20165700ede21g","displayName":"John Smith","emailAddress":"john@example.com","active":true},
			{"accountId":"5b10a2844c20165700ede22h","displayName":"John Smithers","active":true}
		]`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL + "/", Email: "bot@example.com", APIToken: "token"})
	users, err := c.SearchUsers(context.Background(), "John Smith")

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, UserRecord{
		DisplayName: "John Smith",
		Email:       "john@example.com",
		AccountID:   "5b10a2844c20165700ede21g",
	}, users[0])
	require.Empty(t, users[1].Email)
	require.Equal(t, "John Smith", gotQuery)
	require.Contains(t, gotAuth, "Basic ")
	require.Equal(t, "application/json", gotAccept)
}

func TestClient_SearchUsers_EmptyResult(t *testing.T) {
	srv := newJiraServer(t, map[string][]jiraUser{"ghost": {}}, http.StatusOK)

	users, err := NewClient(ClientConfig{BaseURL: srv.URL}).SearchUsers(context.Background(), "ghost")

	require.NoError(t, err)
	require.Empty(t, users)
}

func TestClient_SearchUsers_NonSuccessStatus(t *testing.T) {
	srv := newJiraServer(t, nil, http.StatusForbidden)

	_, err := NewClient(ClientConfig{BaseURL: srv.URL}).SearchUsers(context.Background(), "john")

	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrLookupFailed)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	require.Contains(t, statusErr.Body, "nope")
}

func TestClient_SearchUsers_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(ClientConfig{BaseURL: url}).SearchUsers(context.Background(), "john")

	require.ErrorIs(t, err, apperrors.ErrLookupFailed)
}

func TestClient_SearchUsers_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	_, err := NewClient(ClientConfig{BaseURL: srv.URL}).SearchUsers(context.Background(), "john")

	require.ErrorIs(t, err, apperrors.ErrLookupFailed)
}
