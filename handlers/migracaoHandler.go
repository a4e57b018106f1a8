package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/database"
)

// MigrarDadosHandler importa os processos da planilha antiga para o banco
func MigrarDadosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		associados, processos, err := database.MigrarDadosLegados(db)
		if err != nil {
			log.Printf("Erro na migração: %v", err)
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Erro na migração dos dados",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":           true,
			"message":           "Dados migrados com sucesso!",
			"associadosCriados": associados,
			"processosCriados":  processos,
		})
	}
}

// SeedAssociadosHandler insere os associados de exemplo para demonstração
func SeedAssociadosHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criados, err := database.SeedAssociados(db)
		if err != nil {
			log.Printf("Erro ao carregar associados de exemplo: %v", err)
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Erro ao adicionar associados de exemplo",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":           true,
			"message":           "Associados de exemplo adicionados com sucesso!",
			"associadosCriados": criados,
		})
	}
}

// SeedAnotacoesHandler insere anotações de exemplo para demonstração
func SeedAnotacoesHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criadas, err := database.SeedAnotacoes(db)
		if err != nil {
			log.Printf("Erro ao adicionar anotações: %v", err)
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Erro ao adicionar anotações de exemplo",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":          true,
			"message":          "Anotações de exemplo adicionadas com sucesso!",
			"anotacoesCriadas": criadas,
		})
	}
}
