package handlers

import (
	"net/http"
	"time"
)

func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	events, err := a.Events.ListUpcoming(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("events list failed")
		a.domainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(events))
	for _, e := range events {
		items = append(items, map[string]any{
			"event_id":   e.ID,
			"ngo_id":     e.NgoID,
			"event_name": e.Name,
			"event_date": e.Date.Format(time.DateOnly),
			"location":   e.Location,
			"ngo_name":   e.NgoName,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
