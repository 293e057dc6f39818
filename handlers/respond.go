package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/gagliardetto/solana-go"
)

// writeJSON serializa v como resposta JSON com o status dado.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorResponse é o corpo padrão de erro; Code carrega o código numérico
// do contrato quando a falha vem dele.
type errorResponse struct {
	Error string `json:"error"`
	Code  uint32 `json:"code,omitempty"`
}

// writeError escreve um erro simples sem código de contrato.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeContractError mapeia um erro tipado do contrato para o status HTTP
// correspondente. Erros que não vêm do contrato viram 500.
func writeContractError(w http.ResponseWriter, err error) {
	var cerr *contract.Error
	if !errors.As(err, &cerr) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch cerr.Code {
	case contract.ErrUnauthorized.Code:
		status = http.StatusForbidden
	case contract.ErrAlreadyInitialized.Code,
		contract.ErrSharesAlreadyMinted.Code,
		contract.ErrAlreadyVoted.Code:
		status = http.StatusConflict
	case contract.ErrInvalidValuation.Code,
		contract.ErrInvalidShareTotal.Code,
		contract.ErrInvalidVotingDuration.Code,
		contract.ErrInvalidProposalID.Code,
		contract.ErrInvalidText.Code:
		status = http.StatusBadRequest
	case contract.ErrInsufficientFunds.Code:
		status = http.StatusPaymentRequired
	case contract.ErrNothingToDistribute.Code,
		contract.ErrVotingClosed.Code:
		status = http.StatusUnprocessableEntity
	case contract.ErrNotInitialized.Code,
		contract.ErrProposalNotFound.Code:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: cerr.Message, Code: cerr.Code})
}

// parsePubKey decodifica uma chave pública em Base58, respondendo 400 em
// caso de valor inválido.
func parsePubKey(w http.ResponseWriter, value, field string) (solana.PublicKey, bool) {
	key, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		writeError(w, http.StatusBadRequest, field+" não é uma chave pública Solana válida")
		return solana.PublicKey{}, false
	}
	return key, true
}
