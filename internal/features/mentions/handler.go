package mentions

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/mentionlookup/internal/pkg/response"
	apperrors "github.com/xyz-asif/mentionlookup/pkg/errors"
)

// Handler handles HTTP requests for the mention panel
type Handler struct {
	service *Service
}

// NewHandler creates a new mentions handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Extract handles mention extraction without directory lookups
// @Summary Extract mentions
// @Description Extract @-mention candidates from the selected text in the host context
// @Tags mentions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PanelRequest true "Host context"
// @Success 200 {object} response.APIResponse{data=ExtractResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /mentions/extract [post]
func (h *Handler) Extract(c *gin.Context) {
	req, ok := bindPanelRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Extract(c.Request.Context(), req.Provider())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, ExtractResponse{
		SelectedText: result.SelectedText,
		Mentions:     result.Mentions,
		Unique:       result.Unique(),
	})
}

// Resolve handles a full extract-and-resolve pass
// @Summary Resolve mentions
// @Description Extract mentions from the selection and look each one up in the user directory
// @Tags mentions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PanelRequest true "Host context"
// @Success 200 {object} response.APIResponse{data=ResolveResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /mentions/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	req, ok := bindPanelRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Run(c.Request.Context(), req.Provider())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, result.toResponse())
}

// Export resolves the selection and returns one list as plain text
// @Summary Export resolved users
// @Description Resolve the selection and return emails, names, account ids or mentions one per line
// @Tags mentions
// @Accept json
// @Produce plain
// @Security BearerAuth
// @Param kind query string true "List to export" Enums(emails, names, accounts, mentions)
// @Param request body PanelRequest true "Host context"
// @Success 200 {string} string
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /mentions/export [post]
func (h *Handler) Export(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationFailed(c, "kind query parameter is required")
		return
	}
	if err := ValidateExportQuery(&query); err != nil {
		handleError(c, err)
		return
	}

	req, ok := bindPanelRequest(c)
	if !ok {
		return
	}

	result, err := h.service.Run(c.Request.Context(), req.Provider())
	if err != nil {
		handleError(c, err)
		return
	}

	body, err := result.Export(ExportKind(query.Kind))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Text(c, body)
}

func bindPanelRequest(c *gin.Context) (*PanelRequest, bool) {
	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return nil, false
	}
	if err := ValidatePanelRequest(&req); err != nil {
		handleError(c, err)
		return nil, false
	}
	return &req, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrContextUnavailable):
		response.ValidationError(c, "Selection context is unavailable", "CONTEXT_UNAVAILABLE")
	case errors.Is(err, apperrors.ErrValidation):
		response.ValidationFailed(c, err.Error())
	default:
		response.InternalServerError(c, "Failed to process mentions", "INTERNAL_ERROR")
	}
}
