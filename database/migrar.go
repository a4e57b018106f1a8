package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// opcional converte campos vazios da planilha em NULL no banco
func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MigrarDadosLegados importa os processos da planilha antiga. Para cada
// registro, o associado é resolvido pelo nome do autor (criado sem matrícula
// quando não existe) e o processo só entra se o número ainda não estiver
// cadastrado, então a migração pode ser repetida sem duplicar dados.
func MigrarDadosLegados(db *sql.DB) (associadosCriados, processosCriados int, err error) {
	for _, dado := range DadosLegados {
		var idAssociado int
		err = db.QueryRow(`SELECT id FROM apeoc.associado WHERE nome = $1 LIMIT 1`, dado.Autor).Scan(&idAssociado)
		if errors.Is(err, sql.ErrNoRows) {
			err = db.QueryRow(`INSERT INTO apeoc.associado (nome) VALUES ($1) RETURNING id`, dado.Autor).Scan(&idAssociado)
			if err == nil {
				associadosCriados++
				log.Printf("Associado criado: %s", dado.Autor)
			}
		}
		if err != nil {
			return associadosCriados, processosCriados, fmt.Errorf("erro ao resolver associado %q: %v", dado.Autor, err)
		}

		var existe bool
		err = db.QueryRow(`SELECT EXISTS (SELECT 1 FROM apeoc.processo WHERE numero = $1)`, dado.Processo).Scan(&existe)
		if err != nil {
			return associadosCriados, processosCriados, fmt.Errorf("erro ao verificar processo %q: %v", dado.Processo, err)
		}
		if existe {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO apeoc.processo (id_associado, autor, numero, vara, data, ultimo_mov,
				situacao, proximo_passo, ida_ao_forum, advogado, tipo_acao)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, idAssociado, dado.Autor, dado.Processo, opcional(dado.Vara), opcional(dado.Data),
			opcional(dado.UltimoMov), opcional(dado.Situacao), opcional(dado.ProximoPasso),
			opcional(dado.IdaAoForum), opcional(dado.Advogado), opcional(dado.TipoAcao))
		if err != nil {
			return associadosCriados, processosCriados, fmt.Errorf("erro ao criar processo %q: %v", dado.Processo, err)
		}
		processosCriados++
		log.Printf("Processo criado: %s", dado.Processo)
	}

	return associadosCriados, processosCriados, nil
}

// SeedAnotacoes insere anotações de exemplo para os primeiros associados
// cadastrados
func SeedAnotacoes(db *sql.DB) (int, error) {
	rows, err := db.Query(`SELECT id FROM apeoc.associado ORDER BY id LIMIT 3`)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar associados: %v", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		log.Println("Nenhum associado encontrado para receber anotações de exemplo.")
		return 0, nil
	}

	exemplos := []struct {
		indice   int
		conteudo string
		autor    string
	}{
		{0, "Associado entrou em contato para informar mudança de telefone. Novo número: (88) 99999-8888", "Secretária Maria"},
		{0, "Documentação atualizada e entregue no escritório", "Advogado João"},
		{1, "Audiência marcada para dia 15/12/2024 às 14h", "Advogado Pedro"},
		{2, "Associado solicitou informações sobre andamento do processo", "Atendente Ana"},
	}

	criadas := 0
	for _, exemplo := range exemplos {
		if exemplo.indice >= len(ids) {
			continue
		}
		_, err := db.Exec(`
			INSERT INTO apeoc.anotacao (id_associado, conteudo, autor) VALUES ($1, $2, $3)
		`, ids[exemplo.indice], exemplo.conteudo, exemplo.autor)
		if err != nil {
			return criadas, fmt.Errorf("erro ao criar anotação de exemplo: %v", err)
		}
		criadas++
	}
	return criadas, nil
}
