package mentions

import (
	"fmt"
	"strings"

	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// MaxSelectedTextLength bounds the selection accepted over HTTP, in bytes.
const MaxSelectedTextLength = 100_000

func ValidatePanelRequest(req *PanelRequest) error {
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if req.Format == "" {
		req.Format = FormatText
	}

	if req.Format != FormatText && req.Format != FormatHTML {
		return fmt.Errorf("%w: format must be: text or html", apperrors.ErrValidation)
	}

	if req.Context != nil && req.Context.Extension != nil && req.Context.Extension.SelectedText != nil {
		if len(*req.Context.Extension.SelectedText) > MaxSelectedTextLength {
			return fmt.Errorf("%w: selected text must be %d bytes or less", apperrors.ErrValidation, MaxSelectedTextLength)
		}
	}

	return nil
}

// Provider returns the ContextProvider for a validated request.
func (req *PanelRequest) Provider() ContextProvider {
	if req.Format == FormatHTML {
		return HTMLSelection(req.Context)
	}
	return req.Context
}

func ValidateExportQuery(query *ExportQuery) error {
	query.Kind = strings.ToLower(strings.TrimSpace(query.Kind))
	if _, err := ParseExportKind(query.Kind); err != nil {
		return err
	}
	return nil
}
