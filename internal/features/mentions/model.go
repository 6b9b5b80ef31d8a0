package mentions

import (
	"context"
	"fmt"

	"github.com/xyz-asif/mentionlookup/internal/features/directory"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// Selection formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// ContextProvider supplies the text the user selected in the host.
type ContextProvider interface {
	SelectedText(ctx context.Context) (string, error)
}

// StaticText is a ContextProvider for text already in hand (CLI, tests).
type StaticText string

func (s StaticText) SelectedText(context.Context) (string, error) {
	return string(s), nil
}

// HostContext mirrors the context object the host panel hands to the app.
type HostContext struct {
	LocalID   string            `json:"localId,omitempty"`
	ModuleKey string            `json:"moduleKey,omitempty"`
	Extension *ExtensionContext `json:"extension"`
}

type ExtensionContext struct {
	Type         string  `json:"type,omitempty"`
	SelectedText *string `json:"selectedText"`
}

// SelectedText fails with ErrContextUnavailable when the host sent no
// extension context. A missing selection is just empty text.
func (h *HostContext) SelectedText(context.Context) (string, error) {
	if h == nil || h.Extension == nil {
		return "", apperrors.ErrContextUnavailable
	}
	if h.Extension.SelectedText == nil {
		return "", nil
	}
	return *h.Extension.SelectedText, nil
}

// htmlSelection converts an HTML selection from inner to plain text.
type htmlSelection struct {
	inner ContextProvider
}

// HTMLSelection wraps a provider whose selection is an HTML fragment.
func HTMLSelection(inner ContextProvider) ContextProvider {
	return htmlSelection{inner: inner}
}

func (h htmlSelection) SelectedText(ctx context.Context) (string, error) {
	raw, err := h.inner.SelectedText(ctx)
	if err != nil {
		return "", err
	}
	text, err := PlainText(raw)
	if err != nil {
		return "", fmt.Errorf("%w: unreadable html selection: %w", apperrors.ErrContextUnavailable, err)
	}
	return text, nil
}

// Request DTOs

type PanelRequest struct {
	Context *HostContext `json:"context"`
	Format  string       `json:"format" example:"text"`
}

type ExportQuery struct {
	Kind string `form:"kind" binding:"required"`
}

// Response DTOs

type ExtractResponse struct {
	SelectedText string   `json:"selectedText"`
	Mentions     []string `json:"mentions"`
	Unique       []string `json:"unique"`
}

type ResolveResponse struct {
	PassID       string                 `json:"passId"`
	SelectedText string                 `json:"selectedText"`
	Mentions     []string               `json:"mentions"`
	Resolutions  []directory.Resolution `json:"resolutions"`
	Users        []directory.UserRecord `json:"users"`
	Unresolved   []string               `json:"unresolved"`
	Exports      map[ExportKind]string  `json:"exports"`
}
