package contract

import "fmt"

// Error é uma falha tipada do contrato. Toda pré-condição violada retorna
// um destes valores; o código numérico é estável e faz parte da API.
type Error struct {
	Code    uint32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("u%d: %s", e.Code, e.Message)
}

// Is compara erros pelo código, para funcionar com errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Códigos de erro do contrato. A numeração segue a convenção u100+ e
// nunca é reutilizada.
var (
	ErrUnauthorized          = &Error{100, "chamador não autorizado"}
	ErrAlreadyInitialized    = &Error{101, "propriedade já inicializada"}
	ErrNotInitialized        = &Error{102, "propriedade não inicializada"}
	ErrSharesAlreadyMinted   = &Error{103, "cotas iniciais já emitidas"}
	ErrInvalidValuation      = &Error{104, "avaliação fora dos limites"}
	ErrInvalidShareTotal     = &Error{105, "total de cotas fora dos limites"}
	ErrInvalidVotingDuration = &Error{106, "duração de votação fora dos limites"}
	ErrInvalidProposalID     = &Error{107, "id de proposta inválido"}
	ErrInsufficientFunds     = &Error{108, "saldo insuficiente para o depósito"}
	ErrNothingToDistribute   = &Error{109, "nenhum valor sob custódia para distribuir"}
	ErrProposalNotFound      = &Error{110, "proposta não encontrada"}
	ErrVotingClosed          = &Error{111, "janela de votação encerrada"}
	ErrAlreadyVoted          = &Error{112, "voto já registrado para esta proposta"}
	ErrInvalidText           = &Error{113, "texto vazio ou acima do tamanho máximo"}
)
