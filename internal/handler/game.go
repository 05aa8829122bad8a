package handler

import (
	"net/http"
	"strings"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/economy"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/event"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/logger"
)

// Query parameter names
const (
	QueryParamUnit = "unit"
	QueryParamMode = "mode"
)

// BuyRequest is the body of a unit purchase
type BuyRequest struct {
	Unit string `json:"unit" validate:"required,unit"`
	Mode string `json:"mode" validate:"buymode"`
}

// UpgradeRequest is the body of an upgrade purchase
type UpgradeRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required,max=64"`
}

// ImportRequest carries an exported save string
type ImportRequest struct {
	Data string `json:"data" validate:"required"`
}

// BuyResponse reports a completed purchase
type BuyResponse struct {
	Message  string          `json:"message"`
	Purchase domain.Purchase `json:"purchase"`
}

// UpgradeResponse reports a completed upgrade purchase
type UpgradeResponse struct {
	Message string                 `json:"message"`
	Upgrade domain.UpgradePurchase `json:"upgrade"`
}

// PrestigeResponse reports the relics awarded by a prestige
type PrestigeResponse struct {
	Message string `json:"message"`
	Gain    int    `json:"gain"`
}

// ExportResponse carries the save string
type ExportResponse struct {
	Data string `json:"data"`
}

// ImportResponse reports the catch-up paid when an imported save resumed
type ImportResponse struct {
	Message     string  `json:"message"`
	OfflineGain float64 `json:"offline_gain"`
}

// sessionFor resolves the player's session. If ok is false the response has
// already been written.
func sessionFor(w http.ResponseWriter, r *http.Request, sessions SessionProvider) (GameSession, string, bool) {
	playerID, ok := playerIDParam(r, w)
	if !ok {
		return nil, "", false
	}
	s, err := sessions.Session(logger.WithPlayerID(r.Context(), playerID), playerID)
	if err != nil {
		respondServiceError(w, r, "Open session", err)
		return nil, "", false
	}
	return s, playerID, true
}

// HandleGetState returns the player's current snapshot
func HandleGetState(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		snap, err := s.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get state", err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleGetQuote prices a purchase without performing it
func HandleGetQuote(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unit, ok := GetQueryParam(r, w, QueryParamUnit)
		if !ok {
			return
		}
		mode, err := economy.ParseBuyMode(GetOptionalQueryParam(r, QueryParamMode, string(domain.BuyOne)))
		if err != nil {
			respondServiceError(w, r, "Quote", err)
			return
		}

		s, _, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		q, err := s.Quote(r.Context(), domain.UnitType(strings.ToLower(unit)), mode)
		if err != nil {
			respondServiceError(w, r, "Quote", err)
			return
		}
		respondJSON(w, http.StatusOK, q)
	}
}

// HandleBuy purchases units. Unaffordable purchases are 409 and change nothing.
func HandleBuy(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy units"); err != nil {
			return
		}
		mode, err := economy.ParseBuyMode(req.Mode)
		if err != nil {
			respondServiceError(w, r, "Buy units", err)
			return
		}

		s, playerID, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		p, err := s.Buy(r.Context(), domain.UnitType(strings.ToLower(req.Unit)), mode)
		if err != nil {
			respondServiceError(w, r, "Buy units", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUnitsPurchased,
			"player_id", playerID,
			"unit", p.Unit,
			"quantity", p.Quantity,
			"price", p.Price)
		respondJSON(w, http.StatusOK, BuyResponse{Message: MsgUnitsPurchased, Purchase: p})
	}
}

// HandlePurchaseUpgrade buys an upgrade for the current run
func HandlePurchaseUpgrade(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase upgrade"); err != nil {
			return
		}

		s, playerID, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		p, err := s.PurchaseUpgrade(r.Context(), domain.UpgradeID(req.UpgradeID))
		if err != nil {
			respondServiceError(w, r, "Purchase upgrade", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUpgradePurchased, "player_id", playerID, "upgrade", p.ID)
		respondJSON(w, http.StatusOK, UpgradeResponse{Message: MsgUpgradePurchased, Upgrade: p})
	}
}

// HandlePrestige performs the soft reset
func HandlePrestige(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, playerID, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		gain, err := s.Prestige(r.Context())
		if err != nil {
			respondServiceError(w, r, "Prestige", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgPrestigeCompleted, "player_id", playerID, "gain", gain)
		respondJSON(w, http.StatusOK, PrestigeResponse{Message: MsgPrestigeComplete, Gain: gain})
	}
}

// HandleWipe restarts the player from a fresh state
func HandleWipe(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, playerID, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		if err := s.Wipe(r.Context()); err != nil {
			respondServiceError(w, r, "Wipe", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgGameWiped, "player_id", playerID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameWiped})
	}
}

// HandleExportSave returns the player's save string
func HandleExportSave(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		raw, err := s.Export(r.Context())
		if err != nil {
			respondServiceError(w, r, "Export save", err)
			return
		}
		respondJSON(w, http.StatusOK, ExportResponse{Data: raw})
	}
}

// HandleImportSave replaces the player's game with an exported save.
// A corrupt save is 400 and leaves the running game untouched.
func HandleImportSave(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import save"); err != nil {
			return
		}

		s, playerID, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		gain, err := s.Import(r.Context(), req.Data)
		if err != nil {
			respondServiceError(w, r, "Import save", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSaveImported, "player_id", playerID, "offline_gain", gain)
		respondJSON(w, http.StatusOK, ImportResponse{Message: MsgSaveImported, OfflineGain: gain})
	}
}

// HandleSaveNow writes the player's game to the store immediately
func HandleSaveNow(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _, ok := sessionFor(w, r, sessions)
		if !ok {
			return
		}

		if err := s.Save(r.Context(), event.SaveReasonManual); err != nil {
			respondServiceError(w, r, "Save", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameSaved})
	}
}
