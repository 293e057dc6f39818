// Package chain contém os colaboradores externos que o contrato consome:
// o relógio de altura de bloco e o razão de valor nativo sob custódia.
package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go/rpc"
)

// Clock fornece a altura de bloco atual, monotônica e nunca retrocedida.
// É a única noção de tempo que o contrato conhece.
type Clock interface {
	CurrentHeight() (uint64, error)
}

// SolanaClock lê o slot atual de um nó RPC Solana e o usa como altura de
// bloco. O último slot conhecido é mantido em cache para que uma falha
// transitória do RPC nunca faça o relógio andar para trás nem derrubar
// uma operação que já tenha um valor utilizável.
type SolanaClock struct {
	rpcClient *rpc.Client

	mu   sync.Mutex
	last uint64
}

// NewSolanaClock cria um relógio apontando para o endpoint RPC dado.
func NewSolanaClock(rpcEndpoint string) *SolanaClock {
	return &SolanaClock{rpcClient: rpc.New(rpcEndpoint)}
}

// CurrentHeight retorna o slot finalizado atual. Se o RPC falhar e já
// houver um slot em cache, o cache é retornado; sem cache, a falha é do
// nível do host e propaga.
func (c *SolanaClock) CurrentHeight() (uint64, error) {
	slot, err := c.rpcClient.GetSlot(context.Background(), rpc.CommitmentFinalized)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.last > 0 {
			return c.last, nil
		}
		return 0, fmt.Errorf("falha ao obter slot atual da Solana: %w", err)
	}
	if slot < c.last {
		// Um nó atrasado nunca pode rebobinar o relógio.
		slot = c.last
	}
	c.last = slot
	return slot, nil
}

// ManualClock é um relógio avançado manualmente, útil em testes e em
// ambientes sem acesso a um nó RPC.
type ManualClock struct {
	mu     sync.Mutex
	height uint64
}

// NewManualClock cria um relógio manual começando na altura dada.
func NewManualClock(height uint64) *ManualClock {
	return &ManualClock{height: height}
}

// CurrentHeight retorna a altura atual.
func (c *ManualClock) CurrentHeight() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height, nil
}

// Advance avança o relógio em n blocos.
func (c *ManualClock) Advance(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += n
}
