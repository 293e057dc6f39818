package models

// ShareUnit representa uma cota indivisível do imóvel.
// As cotas são numeradas de 1 até TotalShares e cada uma tem exatamente
// um dono a partir da emissão inicial; não existe transferência neste núcleo.
type ShareUnit struct {
	ID    uint64 `json:"id" db:"id"`       // Número da cota, começando em 1
	Owner string `json:"owner" db:"owner"` // Chave pública Solana do dono, em Base58
}
