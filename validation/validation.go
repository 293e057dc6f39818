// Package validation contém os predicados puros que delimitam toda entrada
// numérica e textual do contrato. Nenhuma função aqui toca estado ou falha;
// os chamadores compõem os predicados como pré-condições.
package validation

// Limites do contrato. Durações de votação são medidas em blocos
// (144 blocos ≈ 1 dia, 52.560 ≈ 1 ano).
const (
	MinValuation uint64 = 1_000_000
	MaxValuation uint64 = 1_000_000_000_000

	MinShares uint64 = 1
	MaxShares uint64 = 10_000

	MinVotingDuration uint64 = 144
	MaxVotingDuration uint64 = 52_560

	MaxTitleLen       = 128
	MaxDescriptionLen = 512
)

// ValidValuation verifica se a avaliação do imóvel está dentro dos limites.
func ValidValuation(v uint64) bool {
	return v >= MinValuation && v <= MaxValuation
}

// ValidShareCount verifica se o total de cotas está dentro dos limites.
func ValidShareCount(s uint64) bool {
	return s >= MinShares && s <= MaxShares
}

// ValidVotingDuration verifica se a duração da votação, em blocos, está
// dentro dos limites.
func ValidVotingDuration(d uint64) bool {
	return d >= MinVotingDuration && d <= MaxVotingDuration
}

// ValidProposalID verifica se o id referencia uma proposta já criada,
// dado o contador atual de propostas.
func ValidProposalID(id, currentCount uint64) bool {
	return id > 0 && id <= currentCount
}

// ValidText verifica se o texto é não vazio e cabe em maxLen bytes.
func ValidText(s string, maxLen int) bool {
	return len(s) > 0 && len(s) <= maxLen
}
