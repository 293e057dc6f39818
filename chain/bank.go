package chain

import (
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// ErrInsufficientBalance indica que a conta de origem não cobre a
// transferência pedida.
var ErrInsufficientBalance = errors.New("saldo insuficiente na conta de origem")

// ValueLedger é o razão de valor nativo que o contrato consome mas não
// implementa. TransferIn move valor do chamador para a custódia do
// contrato; TransferOut move da custódia para fora. Cada chamada é
// atômica: ou o saldo muda dos dois lados, ou de nenhum.
type ValueLedger interface {
	TransferIn(from solana.PublicKey, amount uint64) error
	TransferOut(to solana.PublicKey, amount uint64) error
	BalanceOf(id solana.PublicKey) uint64
}

// MemoryBank é um razão de valor em processo, usado no lugar da cadeia
// real (fora de escopo). A conta de custódia é fixada na construção.
type MemoryBank struct {
	mu       sync.Mutex
	custody  solana.PublicKey
	balances map[solana.PublicKey]uint64
}

// NewMemoryBank cria um banco em memória com a conta de custódia dada e
// saldos iniciais opcionais.
func NewMemoryBank(custody solana.PublicKey, seed map[solana.PublicKey]uint64) *MemoryBank {
	balances := make(map[solana.PublicKey]uint64, len(seed))
	for id, amount := range seed {
		balances[id] = amount
	}
	return &MemoryBank{custody: custody, balances: balances}
}

// TransferIn move amount da conta from para a custódia do contrato.
func (b *MemoryBank) TransferIn(from solana.PublicKey, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[from] < amount {
		return ErrInsufficientBalance
	}
	b.balances[from] -= amount
	b.balances[b.custody] += amount
	return nil
}

// TransferOut move amount da custódia do contrato para a conta to.
func (b *MemoryBank) TransferOut(to solana.PublicKey, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.balances[b.custody] < amount {
		return ErrInsufficientBalance
	}
	b.balances[b.custody] -= amount
	b.balances[to] += amount
	return nil
}

// BalanceOf retorna o saldo atual da conta.
func (b *MemoryBank) BalanceOf(id solana.PublicKey) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[id]
}

// Credit adiciona saldo a uma conta. Existe para semear contas de
// demonstração; a cadeia real não expõe nada equivalente.
func (b *MemoryBank) Credit(id solana.PublicKey, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[id] += amount
}
