package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/go-chi/chi/v5"
)

// PropertyHandler lida com requisições HTTP do registro do imóvel e das cotas.
type PropertyHandler struct {
	Contract *contract.Contract
}

// NewPropertyHandler cria uma nova instância do handler do imóvel.
func NewPropertyHandler(c *contract.Contract) *PropertyHandler {
	return &PropertyHandler{Contract: c}
}

// Initialize inicializa o registro do imóvel.
// POST /property/initialize
func (h *PropertyHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Caller      string `json:"caller"`
		Valuation   uint64 `json:"valuation"`
		TotalShares uint64 `json:"total_shares"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := parsePubKey(w, requestBody.Caller, "caller")
	if !ok {
		return
	}

	if err := h.Contract.InitializeProperty(caller, requestBody.Valuation, requestBody.TotalShares); err != nil {
		writeContractError(w, err)
		return
	}

	record, err := h.Contract.PropertyDetails()
	if err != nil {
		writeContractError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// MintShares emite as cotas iniciais do imóvel.
// POST /property/mint-shares
func (h *PropertyHandler) MintShares(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Caller string `json:"caller"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := parsePubKey(w, requestBody.Caller, "caller")
	if !ok {
		return
	}

	if err := h.Contract.MintInitialShares(caller); err != nil {
		writeContractError(w, err)
		return
	}

	record, err := h.Contract.PropertyDetails()
	if err != nil {
		writeContractError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// GetProperty obtém os detalhes do imóvel.
// GET /property
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	record, err := h.Contract.PropertyDetails()
	if err != nil {
		writeContractError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// GetShareOwner obtém o dono de uma cota.
// GET /shares/{id}/owner
func (h *PropertyHandler) GetShareOwner(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "número de cota inválido")
		return
	}

	owner, ok := h.Contract.ShareOwner(unitID)
	if !ok {
		writeError(w, http.StatusNotFound, "cota não emitida")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"owner": owner.String()})
}
