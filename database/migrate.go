package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations cria o schema e as tabelas do sistema caso ainda não existam
func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE SCHEMA IF NOT EXISTS apeoc;`,

		// Tabela de usuários do sistema (login)
		`CREATE TABLE IF NOT EXISTS apeoc.usuario (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255),
			email VARCHAR(255) UNIQUE,
			role VARCHAR(50) NOT NULL DEFAULT 'user',
			active BOOLEAN DEFAULT true,
			inicial BOOLEAN DEFAULT false,
			date_create TIMESTAMP DEFAULT now(),
			date_update TIMESTAMP DEFAULT now()
		);`,

		// Tabela de associados
		`CREATE TABLE IF NOT EXISTS apeoc.associado (
			id SERIAL PRIMARY KEY,
			matricula VARCHAR(50) NOT NULL DEFAULT '',
			nome VARCHAR(255) NOT NULL,
			referencia VARCHAR(100),
			valor VARCHAR(50),
			estado VARCHAR(100),
			categoria VARCHAR(100),
			cargo VARCHAR(255),
			aniversario VARCHAR(50),
			date_create TIMESTAMP DEFAULT now(),
			date_update TIMESTAMP DEFAULT now()
		);`,

		// Matrícula identifica o associado, mas associados criados pela
		// migração de processos legados entram sem matrícula
		`CREATE UNIQUE INDEX IF NOT EXISTS associado_matricula_idx
			ON apeoc.associado (matricula) WHERE matricula <> '';`,

		// Tabela de processos jurídicos
		`CREATE TABLE IF NOT EXISTS apeoc.processo (
			id SERIAL PRIMARY KEY,
			id_associado INTEGER REFERENCES apeoc.associado(id),
			autor VARCHAR(255) NOT NULL,
			numero VARCHAR(100) NOT NULL,
			vara VARCHAR(100),
			data VARCHAR(50),
			ultimo_mov VARCHAR(100),
			situacao TEXT,
			proximo_passo TEXT,
			ida_ao_forum VARCHAR(100),
			advogado VARCHAR(255),
			tipo_acao VARCHAR(255),
			anotacoes TEXT,
			date_create TIMESTAMP DEFAULT now(),
			date_update TIMESTAMP DEFAULT now()
		);`,

		// Tabela de anotações dos associados
		`CREATE TABLE IF NOT EXISTS apeoc.anotacao (
			id SERIAL PRIMARY KEY,
			id_associado INTEGER NOT NULL REFERENCES apeoc.associado(id),
			conteudo TEXT NOT NULL,
			autor VARCHAR(255) NOT NULL,
			date_create TIMESTAMP DEFAULT now(),
			date_update TIMESTAMP DEFAULT now()
		);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("erro ao executar a query: %v\n%v", err, query)
		}
	}

	return nil
}
