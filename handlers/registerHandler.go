package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
)

// RegisterHandler lida com o cadastro aberto de usuários
func RegisterHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string  `json:"username"`
			Password string  `json:"password"`
			Name     *string `json:"name"`
			Email    *string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.Username == "" || req.Password == "" {
			respondErro(w, http.StatusBadRequest, "Nome de usuário e senha são obrigatórios")
			return
		}

		usuario, err := svc.Registrar(req.Username, req.Password, req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUsernameEmUso):
				respondErro(w, http.StatusBadRequest, "Nome de usuário já existe")
			case errors.Is(err, auth.ErrEmailEmUso):
				respondErro(w, http.StatusBadRequest, "Email já está em uso")
			default:
				log.Printf("Erro ao registrar usuário: %v", err)
				respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			}
			return
		}

		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Usuário criado com sucesso",
			"user":    usuario,
		})
	}
}
