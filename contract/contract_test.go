package contract_test

import (
	"github.com/ferreirogomes/tijolinho/chain"
	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/gagliardetto/solana-go"
)

// testEnv reúne o contrato e seus colaboradores falsos. O banco nasce com
// saldo para o administrador e para um inquilino genérico.
type testEnv struct {
	contract *contract.Contract
	admin    solana.PublicKey
	self     solana.PublicKey
	tenant   solana.PublicKey
	clock    *chain.ManualClock
	bank     *chain.MemoryBank
}

func newTestEnv() *testEnv {
	admin := solana.NewWallet().PublicKey()
	self := solana.NewWallet().PublicKey()
	tenant := solana.NewWallet().PublicKey()

	clock := chain.NewManualClock(100)
	bank := chain.NewMemoryBank(self, map[solana.PublicKey]uint64{
		admin:  10_000_000,
		tenant: 10_000_000,
	})

	return &testEnv{
		contract: contract.New(admin, self, clock, bank, nil),
		admin:    admin,
		self:     self,
		tenant:   tenant,
		clock:    clock,
		bank:     bank,
	}
}

// initialized devolve um ambiente já com o imóvel registrado.
func initialized(valuation, shares uint64) *testEnv {
	env := newTestEnv()
	if err := env.contract.InitializeProperty(env.admin, valuation, shares); err != nil {
		panic(err)
	}
	return env
}

// minted devolve um ambiente com o imóvel registrado e as cotas emitidas.
func minted(valuation, shares uint64) *testEnv {
	env := initialized(valuation, shares)
	if err := env.contract.MintInitialShares(env.admin); err != nil {
		panic(err)
	}
	return env
}
