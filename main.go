package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/ferreirogomes/tijolinho/chain"
	"github.com/ferreirogomes/tijolinho/contract"
	"github.com/ferreirogomes/tijolinho/handlers"
	"github.com/ferreirogomes/tijolinho/storage"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	adminBase58 := os.Getenv("ADMIN_PUBKEY")
	if adminBase58 == "" {
		log.Fatal("ADMIN_PUBKEY é obrigatório (chave pública Solana do administrador em Base58)")
	}
	admin, err := solana.PublicKeyFromBase58(adminBase58)
	if err != nil {
		log.Fatalf("ADMIN_PUBKEY inválido: %v", err)
	}

	// A identidade custodial do contrato. Sem uma chave configurada, uma
	// carteira nova é gerada a cada boot; bom para desenvolvimento, ruim
	// para retomar estado espelhado.
	self := solana.NewWallet().PublicKey()
	if contractBase58 := os.Getenv("CONTRACT_PUBKEY"); contractBase58 != "" {
		self, err = solana.PublicKeyFromBase58(contractBase58)
		if err != nil {
			log.Fatalf("CONTRACT_PUBKEY inválido: %v", err)
		}
	}
	log.Printf("Identidade custodial do contrato: %s", self)

	var store storage.Store
	if dataSourceName := os.Getenv("DATABASE_URL"); dataSourceName != "" {
		db, err := storage.NewDB(dataSourceName)
		if err != nil {
			log.Fatalf("Falha fatal ao conectar ao banco de dados e aplicar migrações: %v", err)
		}
		defer db.Close()
		store = db
	} else {
		log.Println("DATABASE_URL não definido; executando sem espelho persistente de estado.")
	}

	solanaRPCURL := os.Getenv("SOLANA_RPC_URL")
	if solanaRPCURL == "" {
		solanaRPCURL = rpc.DevNet_RPC
	}
	clock := chain.NewSolanaClock(solanaRPCURL)
	log.Printf("Relógio de blocos apontando para %s", solanaRPCURL)

	bank := chain.NewMemoryBank(self, seedBalances(os.Getenv("SEED_ACCOUNTS")))

	c := contract.New(admin, self, clock, bank, store)
	if err := c.Restore(); err != nil {
		log.Fatalf("Falha ao restaurar estado do contrato: %v", err)
	}

	propertyHandler := handlers.NewPropertyHandler(c)
	incomeHandler := handlers.NewIncomeHandler(c)
	governanceHandler := handlers.NewGovernanceHandler(c)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)

	r.Route("/property", func(r chi.Router) {
		r.Post("/initialize", propertyHandler.Initialize)
		r.Post("/mint-shares", propertyHandler.MintShares)
		r.Get("/", propertyHandler.GetProperty)
	})

	r.Get("/shares/{id}/owner", propertyHandler.GetShareOwner)

	r.Route("/income", func(r chi.Router) {
		r.Post("/deposit", incomeHandler.Deposit)
		r.Post("/distribute", incomeHandler.Distribute)
		r.Get("/balance/{identity}", incomeHandler.GetBalance)
	})

	r.Route("/proposals", func(r chi.Router) {
		r.Post("/", governanceHandler.CreateProposal)
		r.Get("/count", governanceHandler.GetProposalCount)
		r.Get("/{id}", governanceHandler.GetProposal)
		r.Post("/{id}/votes", governanceHandler.Vote)
		r.Get("/{id}/has-voted/{voter}", governanceHandler.HasVoted)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Servidor backend rodando na porta :%s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// seedBalances interpreta SEED_ACCOUNTS ("pubkey:valor,pubkey:valor") como
// saldos iniciais do banco em memória. Entradas malformadas são fatais
// para não mascarar um erro de configuração.
func seedBalances(raw string) map[solana.PublicKey]uint64 {
	seed := make(map[solana.PublicKey]uint64)
	if raw == "" {
		return seed
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			log.Fatalf("SEED_ACCOUNTS malformado: %q", pair)
		}
		key, err := solana.PublicKeyFromBase58(parts[0])
		if err != nil {
			log.Fatalf("SEED_ACCOUNTS com chave inválida %q: %v", parts[0], err)
		}
		amount, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			log.Fatalf("SEED_ACCOUNTS com valor inválido %q: %v", parts[1], err)
		}
		seed[key] = amount
	}
	return seed
}
