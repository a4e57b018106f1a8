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
)

const colunasProcesso = `id, id_associado, autor, numero, vara, data, ultimo_mov, situacao,
	proximo_passo, ida_ao_forum, advogado, tipo_acao, anotacoes, date_create, date_update`

func scanProcesso(row interface {
	Scan(dest ...interface{}) error
}) (models.Processo, error) {
	var p models.Processo
	err := row.Scan(
		&p.ID, &p.IDAssociado, &p.Autor, &p.Numero, &p.Vara, &p.Data,
		&p.UltimoMov, &p.Situacao, &p.ProximoPasso, &p.IdaAoForum,
		&p.Advogado, &p.TipoAcao, &p.Anotacoes, &p.DateCreate, &p.DateUpdate,
	)
	return p, err
}

func carregarProcessos(db *sql.DB) ([]models.Processo, error) {
	rows, err := db.Query(`SELECT ` + colunasProcesso + ` FROM apeoc.processo ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var processos []models.Processo
	for rows.Next() {
		p, err := scanProcesso(rows)
		if err != nil {
			return nil, err
		}
		processos = append(processos, p)
	}
	return processos, rows.Err()
}

// buscarOuCriarAssociado resolve o associado pelo nome do autor, criando um
// registro sem matrícula quando ainda não existe. É o elo entre o processo e
// o associado; o filtro público por autor continua comparando o nome.
func buscarOuCriarAssociado(db *sql.DB, nome string) (int, error) {
	var id int
	err := db.QueryRow(`SELECT id FROM apeoc.associado WHERE nome = $1 LIMIT 1`, nome).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = db.QueryRow(`INSERT INTO apeoc.associado (nome) VALUES ($1) RETURNING id`, nome).Scan(&id)
	return id, err
}

// ListarProcessosHandler lida com a listagem de processos. Aceita um único
// filtro por vez: autor, tipo de ação ou pesquisa livre, nessa ordem de
// precedência.
func ListarProcessosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		autor := r.URL.Query().Get("autor")
		tipoAcao := r.URL.Query().Get("tipoAcao")
		pesquisa := r.URL.Query().Get("pesquisa")

		processos, err := carregarProcessos(db)
		if err != nil {
			log.Printf("Erro ao buscar processos: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao buscar processos")
			return
		}

		filtrados := consulta.FiltrarProcessos(processos, autor, tipoAcao, pesquisa)

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"processos":  filtrados,
			"tiposAcoes": consulta.TiposAcoes(processos),
			"autores":    consulta.Autores(processos),
			"total":      len(filtrados),
		})
	}
}

type processoRequest struct {
	ID           int     `json:"id"`
	Autor        string  `json:"autor"`
	Processo     string  `json:"processo"`
	Vara         *string `json:"vara"`
	Data         *string `json:"data"`
	UltimoMov    *string `json:"ultimoMov"`
	Situacao     string  `json:"situacao"`
	ProximoPasso *string `json:"proximoPasso"`
	IdaAoForum   *string `json:"idaAoForum"`
	Advogado     *string `json:"advogado"`
	TipoAcao     *string `json:"tipoAcao"`
	Anotacoes    *string `json:"anotacoes"`
}

// CriarProcessoHandler lida com o cadastro de um novo processo
func CriarProcessoHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.Autor == "" || req.Processo == "" || req.Situacao == "" {
			respondErro(w, http.StatusBadRequest, "Campos obrigatórios: autor, processo, situacao")
			return
		}

		idAssociado, err := buscarOuCriarAssociado(db, req.Autor)
		if err != nil {
			log.Printf("Erro ao resolver associado do processo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao criar processo")
			return
		}

		row := db.QueryRow(`
			INSERT INTO apeoc.processo (id_associado, autor, numero, vara, data, ultimo_mov,
				situacao, proximo_passo, ida_ao_forum, advogado, tipo_acao, anotacoes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+colunasProcesso+`
		`, idAssociado, req.Autor, req.Processo, req.Vara, req.Data, req.UltimoMov,
			req.Situacao, req.ProximoPasso, req.IdaAoForum, req.Advogado, req.TipoAcao, req.Anotacoes)

		processo, err := scanProcesso(row)
		if err != nil {
			log.Printf("Erro ao criar processo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao criar processo")
			return
		}

		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"success":  true,
			"processo": processo,
			"message":  "Processo criado com sucesso",
		})
	}
}

// AtualizarProcessoHandler atualiza os campos de um processo existente
func AtualizarProcessoHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.ID == 0 {
			respondErro(w, http.StatusBadRequest, "ID do processo é obrigatório")
			return
		}
		if req.Autor == "" || req.Processo == "" || req.Situacao == "" {
			respondErro(w, http.StatusBadRequest, "Campos obrigatórios: autor, processo, situacao")
			return
		}

		row := db.QueryRow(`
			UPDATE apeoc.processo
			SET autor = $1, numero = $2, vara = $3, data = $4, ultimo_mov = $5, situacao = $6,
				proximo_passo = $7, ida_ao_forum = $8, advogado = $9, tipo_acao = $10,
				anotacoes = $11, date_update = now()
			WHERE id = $12
			RETURNING `+colunasProcesso+`
		`, req.Autor, req.Processo, req.Vara, req.Data, req.UltimoMov, req.Situacao,
			req.ProximoPasso, req.IdaAoForum, req.Advogado, req.TipoAcao, req.Anotacoes, req.ID)

		processo, err := scanProcesso(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondErro(w, http.StatusNotFound, "Processo não encontrado")
				return
			}
			log.Printf("Erro ao atualizar processo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao atualizar processo")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"processo": processo,
			"message":  "Processo atualizado com sucesso",
		})
	}
}

// AnotacaoProcessoHandler registra a anotação de andamento de um processo
func AnotacaoProcessoHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idProcesso, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondErro(w, http.StatusBadRequest, "ID do processo inválido")
			return
		}

		var req struct {
			Anotacoes string `json:"anotacoes"`
			Autor     string `json:"autor"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.Anotacoes == "" || req.Autor == "" {
			respondErro(w, http.StatusBadRequest, "Anotação e autor são obrigatórios")
			return
		}

		row := db.QueryRow(`
			UPDATE apeoc.processo
			SET anotacoes = $1, date_update = now()
			WHERE id = $2
			RETURNING `+colunasProcesso+`
		`, req.Anotacoes, idProcesso)

		processo, err := scanProcesso(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondErro(w, http.StatusNotFound, "Processo não encontrado")
				return
			}
			log.Printf("Erro ao adicionar anotação: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao adicionar anotação")
			return
		}

		respondJSON(w, http.StatusOK, processo)
	}
}

// ExcluirProcessoHandler remove um processo. Excluir um id inexistente
// responde 404, não erro interno.
func ExcluirProcessoHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idProcesso, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			respondErro(w, http.StatusBadRequest, "ID do processo inválido")
			return
		}

		resultado, err := db.Exec(`DELETE FROM apeoc.processo WHERE id = $1`, idProcesso)
		if err != nil {
			log.Printf("Erro ao excluir processo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao excluir processo")
			return
		}

		linhas, err := resultado.RowsAffected()
		if err != nil {
			log.Printf("Erro ao excluir processo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro ao excluir processo")
			return
		}
		if linhas == 0 {
			respondErro(w, http.StatusNotFound, "Processo não encontrado")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Processo excluído com sucesso",
		})
	}
}
