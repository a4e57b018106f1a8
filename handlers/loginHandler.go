package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
)

// LoginHandler lida com a autenticação de usuários
func LoginHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.Username == "" || req.Password == "" {
			respondErro(w, http.StatusBadRequest, "Nome de usuário e senha são obrigatórios")
			return
		}

		usuario, token, err := svc.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrCredenciaisInvalidas) {
				respondErro(w, http.StatusUnauthorized, "Usuário ou senha incorretos")
				return
			}
			log.Printf("Erro ao fazer login: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":       "Login realizado com sucesso",
			"user":          usuario,
			"token":         token,
			"senha_inicial": usuario.Inicial,
		})
	}
}
