package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
	"APEOC_GESTAO_GO/database"
)

// InitSistemaHandler faz a inicialização completa: cria o administrador
// padrão e carrega os dados de exemplo e os processos legados
func InitSistemaHandler(db *sql.DB, svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuario, err := svc.Inicializar()
		if err != nil {
			if errors.Is(err, auth.ErrJaInicializado) {
				respondErro(w, http.StatusBadRequest, "Sistema já foi inicializado")
				return
			}
			log.Printf("Erro ao inicializar sistema: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		associadosSeed, err := database.SeedAssociados(db)
		if err != nil {
			log.Printf("Erro ao carregar associados de exemplo: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		associadosMigrados, processosMigrados, err := database.MigrarDadosLegados(db)
		if err != nil {
			log.Printf("Erro ao migrar processos legados: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Sistema inicializado com sucesso",
			"user":    usuario,
			"credentials": map[string]string{
				"username": auth.UsuarioInicial,
				"password": auth.SenhaInicial,
			},
			"associadosCriados": associadosSeed + associadosMigrados,
			"processosCriados":  processosMigrados,
		})
	}
}
