package main

import (
	"log"
	"net/http"

	"APEOC_GESTAO_GO/auth"
	"APEOC_GESTAO_GO/config"
	"APEOC_GESTAO_GO/database"
	"APEOC_GESTAO_GO/middleware"
	"APEOC_GESTAO_GO/routes"
	"APEOC_GESTAO_GO/sorteio"
)

func main() {
	// Carregar configuração
	config.LoadEnv()

	// Conectar ao banco de dados
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// Executar migrações
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso!")

	// Serviço de autenticação e sorteador compartilhado
	authService := auth.NovoService(auth.NovoPostgresUserStore(db), config.GetJwtSecret())
	sorteador := sorteio.NovoSorteador(sorteio.IntervaloPadrao)

	// Configurar as rotas
	router := routes.SetupRoutes(db, authService, sorteador)
	handler := middleware.CorsMiddleware(config.GetCorsOrigin())(router)

	// Iniciar o servidor
	portServerRun := config.GetPortServerStart()
	log.Println("Servidor rodando na porta :", portServerRun, "...")
	log.Fatal(http.ListenAndServe(":"+portServerRun, handler))
}
