package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/go-chi/chi/v5"
)

// GovernanceHandler lida com requisições HTTP de propostas e votos.
type GovernanceHandler struct {
	Contract *contract.Contract
}

// NewGovernanceHandler cria uma nova instância do handler de governança.
func NewGovernanceHandler(c *contract.Contract) *GovernanceHandler {
	return &GovernanceHandler{Contract: c}
}

// CreateProposal abre uma nova proposta de governança.
// POST /proposals
func (h *GovernanceHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		Caller      string `json:"caller"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Duration    uint64 `json:"duration"` // Em blocos
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := parsePubKey(w, requestBody.Caller, "caller")
	if !ok {
		return
	}

	id, err := h.Contract.CreateProposal(caller, requestBody.Title, requestBody.Description, requestBody.Duration)
	if err != nil {
		writeContractError(w, err)
		return
	}

	proposal, _ := h.Contract.ProposalDetails(id)
	writeJSON(w, http.StatusCreated, proposal)
}

// Vote registra um voto em uma proposta.
// POST /proposals/{id}/votes
func (h *GovernanceHandler) Vote(w http.ResponseWriter, r *http.Request) {
	proposalID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id de proposta inválido")
		return
	}

	var requestBody struct {
		Caller  string `json:"caller"`
		InFavor bool   `json:"in_favor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	caller, ok := parsePubKey(w, requestBody.Caller, "caller")
	if !ok {
		return
	}

	if err := h.Contract.VoteOnProposal(caller, proposalID, requestBody.InFavor); err != nil {
		writeContractError(w, err)
		return
	}

	proposal, _ := h.Contract.ProposalDetails(proposalID)
	writeJSON(w, http.StatusCreated, proposal)
}

// GetProposal obtém uma proposta pelo id.
// GET /proposals/{id}
func (h *GovernanceHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id de proposta inválido")
		return
	}

	proposal, ok := h.Contract.ProposalDetails(proposalID)
	if !ok {
		writeError(w, http.StatusNotFound, "proposta não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

// GetProposalCount obtém o total de propostas criadas.
// GET /proposals/count
func (h *GovernanceHandler) GetProposalCount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]uint64{"count": h.Contract.ProposalCount()})
}

// HasVoted indica se uma identidade já votou em uma proposta.
// GET /proposals/{id}/has-voted/{voter}
func (h *GovernanceHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	proposalID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id de proposta inválido")
		return
	}

	voter, ok := parsePubKey(w, chi.URLParam(r, "voter"), "voter")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"has_voted": h.Contract.HasVoted(voter, proposalID),
	})
}
