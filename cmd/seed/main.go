// seed aplica o esquema e semeia o banco com o usuário admin e os itens base.
//
// Uso: go run ./cmd/seed
// Lê DATABASE_URL (ou DB_*) do ambiente; carrega .env se existir.
// Idempotente: reexecutar não duplica nada (ON CONFLICT DO NOTHING).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/seu-usuario/estoque-api/pkg/config"
	"github.com/seu-usuario/estoque-api/pkg/hash"
)

const schemaPath = "migrations/schema.sql"

type itemBase struct {
	cod       string
	descricao string
	unid      string
	minimo    int64
}

// Itens de exemplo do cadastro inicial.
var itensBase = []itemBase{
	{"MD01", "ACICLOVIR 200MG", "CAIXA", 10},
	{"MD02", "ACIDO ACETILSALICILICO AAS", "CAIXA", 50},
	{"MD03", "ALBENDAZOL SUS. 4%", "FRASCO", 5},
	{"MMH09", "ALCOOL 70%", "LITRO", 20},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal("carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fatal("conectar ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fatal("ler %s: %v", schemaPath, err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fatal("aplicar esquema: %v", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (username) DO NOTHING`,
		"admin", hash.Digest("admin123")); err != nil {
		fatal("semear admin: %v", err)
	}

	for _, it := range itensBase {
		if _, err := pool.Exec(ctx, `
			INSERT INTO itens (cod, descricao, unid, estoque_minimo)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (cod) DO NOTHING`,
			it.cod, it.descricao, it.unid, it.minimo); err != nil {
			fatal("semear item %s: %v", it.cod, err)
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO estoque (cod, descricao, unid, entradas, saidas, estoque_minimo)
			VALUES ($1, $2, $3, 0, 0, $4)
			ON CONFLICT (cod) DO NOTHING`,
			it.cod, it.descricao, it.unid, it.minimo); err != nil {
			fatal("semear razão %s: %v", it.cod, err)
		}
	}

	fmt.Println("Banco pronto: esquema aplicado, admin e itens base semeados.")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
