package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON escreve a resposta com o status e o corpo informados
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondErro escreve uma resposta de erro no formato {"error": mensagem}
func respondErro(w http.ResponseWriter, status int, mensagem string) {
	respondJSON(w, status, map[string]string{"error": mensagem})
}
