package line

import (
	"net/http"

	"casino_client/internal/api"
	dto "casino_client/internal/api/dto/line"
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

	result, err := h.serv.LineSpin(r.Context(), userID, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}

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

	result, err := h.serv.LineBuyBonus(r.Context(), userID, payload.Bet)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, result)
}
