package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv carrega as variáveis de ambiente do arquivo .env
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente padrão.")
	}
}

// GetDatabaseURL retorna a URL de conexão com o banco de dados
func GetDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL não definida nas variáveis de ambiente.")
	}
	return dbURL
}

// GetPortServerStart retorna a porta em que o servidor deve escutar
func GetPortServerStart() string {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		log.Fatal("SERVER_PORT não definida nas variáveis de ambiente.")
	}
	return port
}

// GetJwtSecret retorna a chave usada para assinar os tokens JWT
func GetJwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET não definida nas variáveis de ambiente.")
	}
	return secret
}

// GetCorsOrigin retorna a origem permitida para requisições do frontend
func GetCorsOrigin() string {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		return "http://localhost"
	}
	return origin
}
