package mentions

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/mentionlookup/internal/features/directory"
	"github.com/xyz-asif/mentionlookup/internal/pkg/logger"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

type directoryFunc func(ctx context.Context, query string) ([]directory.UserRecord, error)

func (f directoryFunc) SearchUsers(ctx context.Context, query string) ([]directory.UserRecord, error) {
	return f(ctx, query)
}

// people is a small in-memory directory shared by the service and handler tests.
var people = map[string][]directory.UserRecord{
	"john":       {{DisplayName: "John Smith", Email: "john@example.com", AccountID: "acc-john"}},
	"John Smith": {{DisplayName: "John Smith", Email: "john@example.com", AccountID: "acc-john"}},
	"alice":      {{DisplayName: "Alice Ng", AccountID: "acc-alice"}},
	"bob":        {{DisplayName: "Bob Roe", Email: "bob@example.com", AccountID: "acc-bob"}},
}

func fakeDirectory() directory.Directory {
	return directoryFunc(func(ctx context.Context, query string) ([]directory.UserRecord, error) {
		if query == "broken" {
			return nil, errors.Join(apperrors.ErrLookupFailed, errors.New("boom"))
		}
		return people[query], nil
	})
}

func newTestService(t *testing.T, dir directory.Directory) (*Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.DEBUG, "json")
	resolver := directory.NewResolver(dir, directory.ResolverConfig{}, log, nil)
	return NewService(resolver, log), &buf
}

func selection(text string) *HostContext {
	return &HostContext{Extension: &ExtensionContext{SelectedText: &text}}
}

func TestService_Run(t *testing.T) {
	svc, logs := newTestService(t, fakeDirectory())

	result, err := svc.Run(context.Background(), StaticText("cc @john, @ghost, @broken and @john again"))
	require.NoError(t, err)

	require.NotEmpty(t, result.PassID)
	require.Equal(t, []string{"john", "ghost", "broken", "john"}, result.Mentions)
	require.Equal(t, []string{"john"}, result.Resolutions.Mentions())
	require.Equal(t, []string{"ghost", "broken"}, result.Unresolved())
	require.Contains(t, logs.String(), `"pass_id":"`+result.PassID+`"`)
}

func TestService_Run_ContextUnavailable(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	for name, provider := range map[string]ContextProvider{
		"nil provider":      nil,
		"no extension":      &HostContext{},
		"nil host context":  (*HostContext)(nil),
		"html no extension": HTMLSelection(&HostContext{}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), provider)
			require.ErrorIs(t, err, apperrors.ErrContextUnavailable)
		})
	}
}

type failingProvider struct{}

func (failingProvider) SelectedText(context.Context) (string, error) {
	return "", errors.New("bridge closed")
}

func TestService_Run_ProviderErrorIsContextUnavailable(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	_, err := svc.Run(context.Background(), failingProvider{})
	require.ErrorIs(t, err, apperrors.ErrContextUnavailable)
	require.ErrorContains(t, err, "bridge closed")
}

func TestService_Run_NullSelectionIsEmpty(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	result, err := svc.Run(context.Background(), &HostContext{Extension: &ExtensionContext{}})
	require.NoError(t, err)
	require.Empty(t, result.Mentions)
	require.Equal(t, 0, result.Resolutions.Len())
	require.Empty(t, result.Unresolved())
}

func TestService_Run_HTMLSelection(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	result, err := svc.Run(context.Background(), HTMLSelection(selection("<p>ask <b>@alice</b></p><p>@bob</p>")))
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, result.Mentions)
	require.Equal(t, []string{"Alice Ng", "Bob Roe"}, result.Names())
}

func TestService_Extract_NoLookups(t *testing.T) {
	dir := directoryFunc(func(ctx context.Context, query string) ([]directory.UserRecord, error) {
		t.Fatalf("unexpected lookup for %q", query)
		return nil, nil
	})
	svc, _ := newTestService(t, dir)

	result, err := svc.Extract(context.Background(), selection("@john and @john"))
	require.NoError(t, err)
	require.Equal(t, []string{"john", "john"}, result.Mentions)
	require.Equal(t, []string{"john"}, result.Unique())
}

func TestResult_Exports(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	result, err := svc.Run(context.Background(), StaticText("@John Smith, @john, @alice, @bob"))
	require.NoError(t, err)

	// "John Smith" and "john" are one account
	require.Len(t, result.Resolutions.Users(), 3)

	emails, err := result.Export(ExportEmails)
	require.NoError(t, err)
	require.Equal(t, "john@example.com\nbob@example.com", emails)

	names, err := result.Export(ExportNames)
	require.NoError(t, err)
	require.Equal(t, "John Smith\nAlice Ng\nBob Roe", names)

	accounts, err := result.Export(ExportAccounts)
	require.NoError(t, err)
	require.Equal(t, "acc-john\nacc-alice\nacc-bob", accounts)

	mentions, err := result.Export(ExportMentions)
	require.NoError(t, err)
	require.Equal(t, "John Smith\njohn\nalice\nbob", mentions)

	_, err = result.Export("phones")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResult_View(t *testing.T) {
	svc, _ := newTestService(t, fakeDirectory())

	result, err := svc.Run(context.Background(), StaticText("@john @alice"))
	require.NoError(t, err)

	headers, rows, err := result.View(TabUsers)
	require.NoError(t, err)
	require.Equal(t, []string{"Mention", "Name", "Email", "Account ID"}, headers)
	require.Equal(t, [][]string{
		{"@john", "John Smith", "john@example.com", "acc-john"},
		{"@alice", "Alice Ng", "", "acc-alice"},
	}, rows)

	headers, rows, err = result.View(TabEmails)
	require.NoError(t, err)
	require.Equal(t, []string{"Email"}, headers)
	require.Equal(t, [][]string{{"john@example.com"}}, rows)

	_, err = ParseTab("phones")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
