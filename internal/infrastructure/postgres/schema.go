package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaDDL cria as tabelas se ainda não existirem. Sem cascatas: a remoção de
// um pai com filhos dependentes falha com foreign_key_violation (23503).
// nome_normalizado guarda o nome em minúsculas e sem acentos, mantido pelos
// repositórios na escrita, para que o filtro de busca pagine no banco.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS empresas_solicitantes (
		id               TEXT PRIMARY KEY,
		nome             TEXT NOT NULL,
		nome_normalizado TEXT NOT NULL DEFAULT '',
		cnpj             TEXT,
		responsavel      TEXT NOT NULL DEFAULT '',
		endereco         TEXT NOT NULL DEFAULT '',
		telefone         TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_empresas_solicitantes_cnpj
		ON empresas_solicitantes (cnpj) WHERE cnpj <> ''`,
	`CREATE INDEX IF NOT EXISTS idx_empresas_solicitantes_nome_normalizado
		ON empresas_solicitantes (nome_normalizado)`,

	`CREATE TABLE IF NOT EXISTS clientes (
		id               TEXT PRIMARY KEY,
		nome             TEXT NOT NULL,
		nome_normalizado TEXT NOT NULL DEFAULT '',
		cnpj             TEXT,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_clientes_cnpj ON clientes (cnpj) WHERE cnpj <> ''`,
	`CREATE INDEX IF NOT EXISTS idx_clientes_nome_normalizado ON clientes (nome_normalizado)`,

	`CREATE TABLE IF NOT EXISTS contatos (
		id         TEXT PRIMARY KEY,
		cliente_id TEXT NOT NULL REFERENCES clientes (id),
		nome       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		telefone   TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS oportunidades (
		id             TEXT PRIMARY KEY,
		cliente_id     TEXT NOT NULL REFERENCES clientes (id),
		titulo         TEXT NOT NULL,
		valor_estimado NUMERIC(14,2) NOT NULL DEFAULT 0,
		status         TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS amostras (
		id               TEXT PRIMARY KEY,
		oportunidade_id  TEXT REFERENCES oportunidades (id),
		descricao        TEXT NOT NULL,
		data_solicitacao DATE,
		status           TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS orcamentos (
		id                               TEXT PRIMARY KEY,
		empresa_solicitante_id           TEXT NOT NULL REFERENCES empresas_solicitantes (id),
		data_criacao                     TIMESTAMPTZ NOT NULL,
		validade_dias                    INTEGER,
		prazo_entrega_dias               INTEGER,
		condicao_pagamento               TEXT NOT NULL DEFAULT '',
		ipi_percentual                   NUMERIC(6,2),
		observacoes                      TEXT NOT NULL DEFAULT '',
		preco_bruto_total                NUMERIC(14,2) NOT NULL,
		valor_ferramental_total          NUMERIC(14,2) NOT NULL,
		valor_diluicao_ferramental_total NUMERIC(14,2) NOT NULL,
		valor_ipi_total                  NUMERIC(14,2) NOT NULL,
		preco_final_total                NUMERIC(14,2) NOT NULL,
		created_at                       TIMESTAMPTZ NOT NULL,
		updated_at                       TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS orcamento_itens (
		id                               TEXT PRIMARY KEY,
		orcamento_id                     TEXT NOT NULL REFERENCES orcamentos (id),
		referencia                       TEXT NOT NULL,
		estilo_caixa                     TEXT NOT NULL DEFAULT '',
		fechamento                       TEXT NOT NULL DEFAULT '',
		numero_cores                     INTEGER,
		medidas                          TEXT NOT NULL DEFAULT '',
		qualidade                        TEXT NOT NULL DEFAULT '',
		quantidade                       INTEGER NOT NULL,
		valor_ferramental                NUMERIC(14,2) NOT NULL,
		valor_unitario                   NUMERIC(14,4) NOT NULL,
		valor_diluicao_ferramental_total NUMERIC(14,2) NOT NULL,
		valor_total                      NUMERIC(14,2) NOT NULL,
		ipi_percentual                   NUMERIC(6,2)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orcamento_itens_orcamento ON orcamento_itens (orcamento_id)`,

	`CREATE TABLE IF NOT EXISTS usuarios (
		id         TEXT PRIMARY KEY,
		nome       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		senha_hash TEXT NOT NULL,
		perfil     TEXT NOT NULL,
		status     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema cria as tabelas na subida do processo, equivalente a uma
// migração inicial idempotente.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaDDL {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("criar schema: %w", err)
		}
	}
	return nil
}
