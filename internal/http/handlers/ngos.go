package handlers

import (
	"net/http"
)

func (a *App) NGOsList(w http.ResponseWriter, r *http.Request) {
	ngos, err := a.NGOs.ListWithEfficiency(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("ngo listing failed")
		a.domainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(ngos))
	for _, n := range ngos {
		items = append(items, map[string]any{
			"ngo_id":           n.ID,
			"ngo_name":         n.Name,
			"city":             n.City,
			"budget":           n.Budget,
			"efficiency_score": n.EfficiencyScore,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
