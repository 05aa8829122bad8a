package handler

import (
	"net/http"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

// HandleGetRoster returns the unit balance table
func HandleGetRoster() http.HandlerFunc {
	roster := domain.Roster()
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, roster)
	}
}

// HandleGetUpgrades returns the upgrade catalog
func HandleGetUpgrades() http.HandlerFunc {
	upgrades := domain.Upgrades()
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, upgrades)
	}
}
