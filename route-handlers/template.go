package routehandlers

import (
	"net/http"

	"github.com/bookmakerhq/bookmaker/templates"
	"github.com/bookmakerhq/bookmaker/webutil"
)

type TemplateHandler struct {
	Registry *templates.Registry
}

func NewTemplateHandler(registry *templates.Registry) *TemplateHandler {
	return &TemplateHandler{Registry: registry}
}

// templateSummary is the client-facing shape of a template. The CSS payload
// and page setup are rendering internals and stay server-side.
type templateSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	PreviewStyle string   `json:"preview_style"`
}

func (h *TemplateHandler) HandleGetTemplates(w http.ResponseWriter, r *http.Request) error {
	all := h.Registry.All()
	summaries := make([]templateSummary, 0, len(all))
	for _, t := range all {
		summaries = append(summaries, templateSummary{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			Icon:         t.Icon,
			Features:     t.Features,
			PreviewStyle: t.PreviewStyle,
		})
	}
	webutil.RespondWithJSON(w, http.StatusOK, summaries)
	return nil
}
