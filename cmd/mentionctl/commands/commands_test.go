package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/mentionlookup/internal/pkg/export"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return f.err
}

func useClipboard(t *testing.T, cb export.Clipboard) {
	t.Helper()
	prev := clipboard
	clipboard = func() export.Clipboard { return cb }
	t.Cleanup(func() { clipboard = prev })
}

// jira fakes the user search endpoint and points the config at it.
func jira(t *testing.T) {
	t.Helper()
	users := map[string][]map[string]any{
		"john":  {{"accountId": "acc-john", "displayName": "John Smith", "emailAddress": "john@example.com"}},
		"alice": {{"accountId": "acc-alice", "displayName": "Alice Ng"}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		found := users[r.URL.Query().Get("query")]
		if found == nil {
			found = []map[string]any{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(found)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("JIRA_BASE_URL", srv.URL)
	t.Setenv("JIRA_EMAIL", "")
	t.Setenv("JIRA_API_TOKEN", "")
	t.Setenv("LOOKUP_RATE_PER_SECOND", "0")
}

func TestExtractCmd(t *testing.T) {
	out, _, err := run(t, "", "extract", "--plain", "@john and @jane, then @john")
	require.NoError(t, err)
	require.Equal(t, "john\njane\njohn\n", out)

	out, _, err = run(t, "@john and @jane, then @john\n", "extract", "--plain", "--unique")
	require.NoError(t, err)
	require.Equal(t, "john\njane\n", out)

	out, _, err = run(t, "", "extract", "@Zoë Müller!")
	require.NoError(t, err)
	require.Contains(t, out, "Zoë Müller")

	out, _, err = run(t, "", "extract", "nothing here")
	require.NoError(t, err)
	require.Equal(t, "No mentions found.\n", out)
}

func TestResolveCmd(t *testing.T) {
	jira(t)

	out, errOut, err := run(t, "", "resolve", "cc @john, @ghost and @alice")
	require.NoError(t, err)
	require.Contains(t, out, "John Smith")
	require.Contains(t, out, "john@example.com")
	require.Contains(t, out, "acc-alice")
	require.Contains(t, errOut, "@ghost")

	out, _, err = run(t, "", "resolve", "--tab", "emails", "cc @john, @alice")
	require.NoError(t, err)
	require.Contains(t, out, "john@example.com")
	require.NotContains(t, out, "acc-alice")
}

func TestResolveCmd_Copy(t *testing.T) {
	jira(t)
	cb := &fakeClipboard{}
	useClipboard(t, cb)

	_, errOut, err := run(t, "", "resolve", "--copy", "accounts", "@john @alice")
	require.NoError(t, err)
	require.Equal(t, "acc-john\nacc-alice", cb.text)
	require.Contains(t, errOut, "Copied accounts")
}

func TestResolveCmd_CopyFailureIsNotFatal(t *testing.T) {
	jira(t)
	useClipboard(t, &fakeClipboard{err: errors.New("no display")})

	out, errOut, err := run(t, "", "resolve", "--copy", "emails", "@john")
	require.NoError(t, err)
	require.Contains(t, out, "John Smith")
	require.Contains(t, errOut, "Could not copy emails")
}

func TestResolveCmd_BadFlags(t *testing.T) {
	_, _, err := run(t, "", "resolve", "--tab", "phones", "@john")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = run(t, "", "resolve", "--copy", "phones", "@john")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveCmd_RequiresDirectory(t *testing.T) {
	t.Setenv("JIRA_BASE_URL", "")
	_, _, err := run(t, "", "resolve", "@john")
	require.ErrorContains(t, err, "JIRA_BASE_URL")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	require.Equal(t, Version+"\n", out)
}
