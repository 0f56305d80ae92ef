package cascade

import (
	"net/http"

	"casino_client/internal/api"
	dto "casino_client/internal/api/dto/cascade"
	"casino_client/internal/service"
	"casino_client/pkg/req"
	"casino_client/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ScriptService
}

type Handler struct {
	serv service.ScriptService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.CascadeSpin(r.Context(), userID, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

// BuyBonus только подтверждает покупку, фриспины придут в ответе следующего спина
func (h *Handler) BuyBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserID(w, r)
	if !ok {
		return
	}
	payload, err := req.Decode[dto.BonusRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serv.CascadeBuyBonus(r.Context(), userID, payload.Amount); err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
