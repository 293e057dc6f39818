package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/go-chi/chi/v5"
)

// IncomeHandler lida com requisições HTTP da renda de aluguel.
type IncomeHandler struct {
	Contract *contract.Contract
}

// NewIncomeHandler cria uma nova instância do handler de renda.
func NewIncomeHandler(c *contract.Contract) *IncomeHandler {
	return &IncomeHandler{Contract: c}
}

// Deposit deposita aluguel sob custódia do contrato.
// POST /income/deposit
func (h *IncomeHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Caller string `json:"caller"`
		Amount uint64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := parsePubKey(w, requestBody.Caller, "caller")
	if !ok {
		return
	}

	if err := h.Contract.DepositRentalIncome(caller, requestBody.Amount); err != nil {
		writeContractError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]uint64{
		"custody_balance": h.Contract.RentalIncomeBalance(h.Contract.Self()),
	})
}

// Distribute dispara a distribuição da renda sob custódia.
// POST /income/distribute
func (h *IncomeHandler) Distribute(w http.ResponseWriter, r *http.Request) {
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

	distributed, err := h.Contract.DistributeIncome(caller)
	if err != nil {
		writeContractError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"distributed": distributed})
}

// GetBalance obtém os créditos de renda de uma identidade.
// GET /income/balance/{identity}
func (h *IncomeHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	identity, ok := parsePubKey(w, chi.URLParam(r, "identity"), "identity")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]uint64{
		"balance": h.Contract.RentalIncomeBalance(identity),
	})
}
