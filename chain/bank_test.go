package chain_test

import (
	"testing"

	"github.com/ferreirogomes/tijolinho/chain"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func TestMemoryBankTransferIn(t *testing.T) {
	custody := solana.NewWallet().PublicKey()
	payer := solana.NewWallet().PublicKey()
	bank := chain.NewMemoryBank(custody, map[solana.PublicKey]uint64{payer: 500})

	err := bank.TransferIn(payer, 200)
	assert.Nil(t, err)
	assert.Equal(t, uint64(300), bank.BalanceOf(payer))
	assert.Equal(t, uint64(200), bank.BalanceOf(custody))

	// Acima do saldo: nada muda dos dois lados.
	err = bank.TransferIn(payer, 301)
	assert.ErrorIs(t, err, chain.ErrInsufficientBalance)
	assert.Equal(t, uint64(300), bank.BalanceOf(payer))
	assert.Equal(t, uint64(200), bank.BalanceOf(custody))
}

func TestMemoryBankTransferOut(t *testing.T) {
	custody := solana.NewWallet().PublicKey()
	recipient := solana.NewWallet().PublicKey()
	bank := chain.NewMemoryBank(custody, map[solana.PublicKey]uint64{custody: 100})

	err := bank.TransferOut(recipient, 60)
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), bank.BalanceOf(custody))
	assert.Equal(t, uint64(60), bank.BalanceOf(recipient))

	err = bank.TransferOut(recipient, 41)
	assert.ErrorIs(t, err, chain.ErrInsufficientBalance)
	assert.Equal(t, uint64(40), bank.BalanceOf(custody))
}

func TestMemoryBankUnknownAccount(t *testing.T) {
	bank := chain.NewMemoryBank(solana.NewWallet().PublicKey(), nil)
	assert.Equal(t, uint64(0), bank.BalanceOf(solana.NewWallet().PublicKey()))
}

func TestManualClock(t *testing.T) {
	clock := chain.NewManualClock(100)

	height, err := clock.CurrentHeight()
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), height)

	clock.Advance(44)
	height, err = clock.CurrentHeight()
	assert.Nil(t, err)
	assert.Equal(t, uint64(144), height)
}
