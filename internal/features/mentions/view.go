package mentions

import (
	"fmt"

	"github.com/xyz-asif/mentionlookup/internal/features/directory"
	"github.com/xyz-asif/mentionlookup/internal/pkg/export"
	"github.com/xyz-asif/mentionlookup/internal/pkg/validator"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// ExportKind names a list that can be copied out of a result.
type ExportKind string

const (
	ExportEmails   ExportKind = "emails"
	ExportNames    ExportKind = "names"
	ExportAccounts ExportKind = "accounts"
	ExportMentions ExportKind = "mentions"
)

var exportKinds = []ExportKind{ExportEmails, ExportNames, ExportAccounts, ExportMentions}

func ParseExportKind(s string) (ExportKind, error) {
	for _, k := range exportKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: kind must be: emails, names, accounts, or mentions", apperrors.ErrValidation)
}

// Result is the outcome of one pipeline pass.
type Result struct {
	PassID       string
	SelectedText string
	// Mentions holds every extracted candidate, duplicates included.
	Mentions    []string
	Resolutions directory.ResolutionMap
}

// Unique returns the distinct candidates.
func (r *Result) Unique() []string {
	return UniqueMentions(r.Mentions)
}

// Unresolved returns the distinct candidates that did not resolve.
func (r *Result) Unresolved() []string {
	out := make([]string, 0)
	for _, m := range r.Unique() {
		if _, ok := r.Resolutions.Get(m); !ok {
			out = append(out, m)
		}
	}
	return out
}

// Emails lists the email of every distinct resolved user that has one. The
// directory hides addresses by privacy setting, so blanks are common.
func (r *Result) Emails() []string {
	var out []string
	for _, u := range r.Resolutions.Users() {
		if validator.IsValidEmail(u.Email) {
			out = append(out, u.Email)
		}
	}
	return out
}

func (r *Result) Names() []string {
	var out []string
	for _, u := range r.Resolutions.Users() {
		out = append(out, u.DisplayName)
	}
	return out
}

func (r *Result) AccountIDs() []string {
	var out []string
	for _, u := range r.Resolutions.Users() {
		out = append(out, u.AccountID)
	}
	return out
}

// Export renders one list as newline separated text, ready for the clipboard.
func (r *Result) Export(kind ExportKind) (string, error) {
	switch kind {
	case ExportEmails:
		return export.Lines(r.Emails()), nil
	case ExportNames:
		return export.Lines(r.Names()), nil
	case ExportAccounts:
		return export.Lines(r.AccountIDs()), nil
	case ExportMentions:
		return export.Lines(r.Resolutions.Mentions()), nil
	default:
		return "", fmt.Errorf("%w: unknown export kind %q", apperrors.ErrValidation, kind)
	}
}

func (r *Result) toResponse() ResolveResponse {
	exports := make(map[ExportKind]string, len(exportKinds))
	for _, k := range exportKinds {
		exports[k], _ = r.Export(k)
	}

	return ResolveResponse{
		PassID:       r.PassID,
		SelectedText: r.SelectedText,
		Mentions:     r.Mentions,
		Resolutions:  r.Resolutions.Entries(),
		Users:        r.Resolutions.Users(),
		Unresolved:   r.Unresolved(),
		Exports:      exports,
	}
}

// Tab names a tabular view of a result.
type Tab string

const (
	TabUsers    Tab = "users"
	TabEmails   Tab = "emails"
	TabNames    Tab = "names"
	TabAccounts Tab = "accounts"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabUsers, TabEmails, TabNames, TabAccounts:
		return t, nil
	}
	return "", fmt.Errorf("%w: tab must be: users, emails, names, or accounts", apperrors.ErrValidation)
}

// View returns the headers and rows for tab.
func (r *Result) View(tab Tab) ([]string, [][]string, error) {
	single := func(header string, items []string) ([]string, [][]string, error) {
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			rows = append(rows, []string{item})
		}
		return []string{header}, rows, nil
	}

	switch tab {
	case TabUsers:
		rows := make([][]string, 0, r.Resolutions.Len())
		for _, e := range r.Resolutions.Entries() {
			rows = append(rows, []string{"@" + e.Mention, e.User.DisplayName, e.User.Email, e.User.AccountID})
		}
		return []string{"Mention", "Name", "Email", "Account ID"}, rows, nil
	case TabEmails:
		return single("Email", r.Emails())
	case TabNames:
		return single("Name", r.Names())
	case TabAccounts:
		return single("Account ID", r.AccountIDs())
	default:
		return nil, nil, fmt.Errorf("%w: unknown tab %q", apperrors.ErrValidation, tab)
	}
}
