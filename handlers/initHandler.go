package handlers

import (
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
)

// InitHandler cria o usuário administrador padrão, apenas quando nenhum
// usuário existe ainda. As credenciais voltam no corpo da resposta para
// serem exibidas na tela de setup.
func InitHandler(svc *auth.Service) http.HandlerFunc {
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

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message": "Usuário administrador criado com sucesso",
			"user":    usuario,
			"credentials": map[string]string{
				"username": auth.UsuarioInicial,
				"password": auth.SenhaInicial,
			},
		})
	}
}

// InitStatusHandler informa se o sistema já foi inicializado
func InitStatusHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inicializado, total, err := svc.Inicializado()
		if err != nil {
			log.Printf("Erro ao verificar inicialização: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"initialized": inicializado,
			"userCount":   total,
		})
	}
}
