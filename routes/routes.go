package routes

import (
	"database/sql"

	"APEOC_GESTAO_GO/auth"
	"APEOC_GESTAO_GO/handlers"
	"APEOC_GESTAO_GO/middleware"
	"APEOC_GESTAO_GO/sorteio"

	"github.com/gorilla/mux"
)

// SetupRoutes monta o roteador da aplicação. As rotas de dados exigem
// autenticação; health check e autenticação ficam abertas.
func SetupRoutes(db *sql.DB, authService *auth.Service, sorteador *sorteio.Sorteador) *mux.Router {
	router := mux.NewRouter()

	// Health Check
	router.HandleFunc("/health", handlers.HealthCheckHandler()).Methods("GET")

	// Rotas de autenticação
	router.HandleFunc("/auth/login", handlers.LoginHandler(authService)).Methods("POST")
	router.HandleFunc("/auth/register", handlers.RegisterHandler(authService)).Methods("POST")
	router.HandleFunc("/auth/init", handlers.InitHandler(authService)).Methods("POST")
	router.HandleFunc("/auth/init", handlers.InitStatusHandler(authService)).Methods("GET")

	// Inicialização completa do sistema (admin padrão + dados de exemplo)
	router.HandleFunc("/init", handlers.InitSistemaHandler(db, authService)).Methods("POST")
	router.HandleFunc("/init", handlers.InitStatusHandler(authService)).Methods("GET")

	// Rotas protegidas
	protegido := router.PathPrefix("/").Subrouter()
	protegido.Use(middleware.RequireAuth(authService))

	protegido.HandleFunc("/auth/me", handlers.MeHandler()).Methods("GET")
	protegido.HandleFunc("/auth/alterar-senha", handlers.AlterarSenhaHandler(authService)).Methods("POST")

	// Associados
	protegido.HandleFunc("/associados", handlers.ListarAssociadosHandler(db)).Methods("GET")
	protegido.HandleFunc("/associados/sorteio", handlers.SorteioHandler(db, sorteador)).Methods("POST")
	protegido.HandleFunc("/associados/{id}/anotacoes", handlers.ListarAnotacoesHandler(db)).Methods("GET")
	protegido.HandleFunc("/associados/{id}/anotacoes", handlers.CriarAnotacaoHandler(db)).Methods("POST")

	// Processos
	protegido.HandleFunc("/processos", handlers.ListarProcessosHandler(db)).Methods("GET")
	protegido.HandleFunc("/processos/create", handlers.CriarProcessoHandler(db)).Methods("POST")
	protegido.HandleFunc("/processos/update", handlers.AtualizarProcessoHandler(db)).Methods("PUT")
	protegido.HandleFunc("/processos/{id}/anotacoes", handlers.AnotacaoProcessoHandler(db)).Methods("POST")
	protegido.HandleFunc("/processos/{id}", handlers.ExcluirProcessoHandler(db)).Methods("DELETE")

	// Migração e dados de exemplo
	protegido.HandleFunc("/migrar-dados", handlers.MigrarDadosHandler(db)).Methods("POST")
	protegido.HandleFunc("/seed/associados", handlers.SeedAssociadosHandler(db)).Methods("POST")
	protegido.HandleFunc("/seed/anotacoes", handlers.SeedAnotacoesHandler(db)).Methods("POST")

	return router
}
