package middleware

import (
	"context"
	"net/http"
	"strings"

	"APEOC_GESTAO_GO/auth"
	"APEOC_GESTAO_GO/models"
)

type contextKey string

const usuarioKey contextKey = "usuario"

// CorsMiddleware libera as requisições do frontend
func CorsMiddleware(origem string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origem)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			// Responde diretamente as requisições OPTIONS (pré-flight)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth exige um token Bearer válido. O usuário é sempre recarregado
// do banco na validação, então contas desativadas perdem o acesso mesmo com
// token ainda não expirado.
func RequireAuth(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				escreverNaoAutorizado(w, "Token não fornecido")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			usuario, err := svc.ValidarToken(tokenString)
			if err != nil {
				escreverNaoAutorizado(w, "Token inválido")
				return
			}

			ctx := context.WithValue(r.Context(), usuarioKey, usuario)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func escreverNaoAutorizado(w http.ResponseWriter, mensagem string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + mensagem + `"}`))
}

// UsuarioDoContexto devolve o usuário autenticado colocado pelo RequireAuth
func UsuarioDoContexto(r *http.Request) (*models.Usuario, bool) {
	usuario, ok := r.Context().Value(usuarioKey).(*models.Usuario)
	return usuario, ok
}
