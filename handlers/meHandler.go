package handlers

import (
	"net/http"

	"APEOC_GESTAO_GO/middleware"
)

// MeHandler devolve o usuário autenticado da requisição
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuario, ok := middleware.UsuarioDoContexto(r)
		if !ok {
			respondErro(w, http.StatusUnauthorized, "Token inválido")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"user": usuario,
		})
	}
}
