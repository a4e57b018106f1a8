package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/consulta"
	"APEOC_GESTAO_GO/sorteio"
)

// SorteioHandler realiza um sorteio entre os associados, sobre o conjunto
// completo ou sobre o resultado da busca quando usarFiltro é verdadeiro
func SorteioHandler(db *sql.DB, sorteador *sorteio.Sorteador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Search     string `json:"search"`
			UsarFiltro bool   `json:"usarFiltro"`
		}
		if r.Body != nil && r.Body != http.NoBody {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
				return
			}
		}

		associados, err := carregarAssociados(db)
		if err != nil {
			log.Printf("Erro ao carregar associados para o sorteio: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		conjunto := associados
		if req.UsarFiltro {
			conjunto = consulta.FiltrarAssociados(associados, req.Search)
		}

		sorteado, sequencia, err := sorteador.Sortear(r.Context(), conjunto, nil)
		if err != nil {
			if errors.Is(err, sorteio.ErrConjuntoVazio) {
				respondErro(w, http.StatusBadRequest, "Não há associados disponíveis para o sorteio")
				return
			}
			// Requisição cancelada no meio da animação
			log.Printf("Sorteio interrompido: %v", err)
			respondErro(w, http.StatusInternalServerError, "Sorteio interrompido")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"sorteado":  sorteado,
			"sequencia": sequencia,
			"historico": sorteador.Historico(),
			"total":     len(conjunto),
		})
	}
}
