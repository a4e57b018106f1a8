package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"APEOC_GESTAO_GO/consulta"
	"APEOC_GESTAO_GO/models"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

// carregarAssociados busca todos os associados do banco; o filtro e a
// ordenação acontecem em memória, no pacote consulta
func carregarAssociados(db *sql.DB) ([]models.Associado, error) {
	rows, err := db.Query(`
		SELECT id, matricula, nome, referencia, valor, estado, categoria, cargo, aniversario, date_create, date_update
		FROM apeoc.associado
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var associados []models.Associado
	for rows.Next() {
		var a models.Associado
		if err := rows.Scan(
			&a.ID, &a.Matricula, &a.Nome, &a.Referencia, &a.Valor,
			&a.Estado, &a.Categoria, &a.Cargo, &a.Aniversario,
			&a.DateCreate, &a.DateUpdate,
		); err != nil {
			return nil, err
		}
		associados = append(associados, a)
	}
	return associados, rows.Err()
}

// ListarAssociadosHandler lida com a listagem de associados, com busca livre
// e ordenação opcionais
func ListarAssociadosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		sortBy := r.URL.Query().Get("sortBy")
		if sortBy == "" {
			sortBy = consulta.OrdenarPorNome
		}

		associados, err := carregarAssociados(db)
		if err != nil {
			log.Printf("Erro na API de associados: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		filtrados := consulta.FiltrarAssociados(associados, search)
		ordenados := consulta.OrdenarAssociados(filtrados, sortBy)
		estatisticas := consulta.CalcularEstatisticas(ordenados)

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"data":                   ordenados,
			"total":                  len(ordenados),
			"estaduais":              estatisticas.Estaduais,
			"municipais":             estatisticas.Municipais,
			"aniversariantesOutubro": estatisticas.AniversariantesOutubro,
			"filters": map[string]string{
				"search": search,
				"sortBy": sortBy,
			},
		})
	}
}

// CriarAnotacaoHandler registra uma anotação de um associado
func CriarAnotacaoHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idAssociado, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondErro(w, http.StatusBadRequest, "ID do associado inválido")
			return
		}

		var req struct {
			Conteudo string `json:"conteudo"`
			Autor    string `json:"autor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.Conteudo == "" || req.Autor == "" {
			respondErro(w, http.StatusBadRequest, "Conteúdo e autor são obrigatórios")
			return
		}

		anotacao := models.Anotacao{
			IDAssociado: idAssociado,
			Conteudo:    req.Conteudo,
			Autor:       req.Autor,
		}
		err = db.QueryRow(`
			INSERT INTO apeoc.anotacao (id_associado, conteudo, autor)
			VALUES ($1, $2, $3)
			RETURNING id, date_create, date_update
		`, anotacao.IDAssociado, anotacao.Conteudo, anotacao.Autor).
			Scan(&anotacao.ID, &anotacao.DateCreate, &anotacao.DateUpdate)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
				respondErro(w, http.StatusNotFound, "Associado não encontrado")
				return
			}
			log.Printf("Erro ao criar anotação: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao criar anotação")
			return
		}

		respondJSON(w, http.StatusCreated, anotacao)
	}
}

// ListarAnotacoesHandler devolve as anotações de um associado, da mais
// recente para a mais antiga
func ListarAnotacoesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idAssociado, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondErro(w, http.StatusBadRequest, "ID do associado inválido")
			return
		}

		rows, err := db.Query(`
			SELECT id, id_associado, conteudo, autor, date_create, date_update
			FROM apeoc.anotacao
			WHERE id_associado = $1
			ORDER BY date_create DESC
		`, idAssociado)
		if err != nil {
			log.Printf("Erro ao buscar anotações: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao buscar anotações")
			return
		}
		defer rows.Close()

		anotacoes := []models.Anotacao{}
		for rows.Next() {
			var a models.Anotacao
			if err := rows.Scan(&a.ID, &a.IDAssociado, &a.Conteudo, &a.Autor, &a.DateCreate, &a.DateUpdate); err != nil {
				log.Printf("Erro ao buscar anotações: %v", err)
				respondErro(w, http.StatusInternalServerError, "Erro ao buscar anotações")
				return
			}
			anotacoes = append(anotacoes, a)
		}

		respondJSON(w, http.StatusOK, anotacoes)
	}
}
