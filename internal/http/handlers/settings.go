package handlers

import (
	"encoding/base64"
	"net/http"
)

// HeroImage serves the landing image as base64 so clients can inline it
// into an img data URI.
func (a *App) HeroImage(w http.ResponseWriter, r *http.Request) {
	img, err := a.Settings.HeroImage(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"hero_image": base64.StdEncoding.EncodeToString(img),
	})
}
