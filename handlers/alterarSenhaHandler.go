package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
	"APEOC_GESTAO_GO/middleware"
)

// AlterarSenhaHandler troca a senha do usuário autenticado. É o caminho
// obrigatório para o administrador criado na inicialização, que nasce com
// senha conhecida e a flag "inicial" ligada.
func AlterarSenhaHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuario, ok := middleware.UsuarioDoContexto(r)
		if !ok {
			respondErro(w, http.StatusUnauthorized, "Token inválido")
			return
		}

		var req struct {
			SenhaAtual string `json:"senhaAtual"`
			NovaSenha  string `json:"novaSenha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondErro(w, http.StatusBadRequest, "Erro ao decodificar o JSON")
			return
		}

		if req.SenhaAtual == "" || req.NovaSenha == "" {
			respondErro(w, http.StatusBadRequest, "Senha atual e nova senha são obrigatórias")
			return
		}

		if err := svc.AlterarSenha(usuario.ID, req.SenhaAtual, req.NovaSenha); err != nil {
			if errors.Is(err, auth.ErrCredenciaisInvalidas) {
				respondErro(w, http.StatusUnauthorized, "Senha atual incorreta")
				return
			}
			log.Printf("Erro ao alterar senha: %v", err)
			respondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"message": "Senha alterada com sucesso",
		})
	}
}
