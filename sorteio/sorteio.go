// Package sorteio implementa o sorteio aleatório de associados: uma sequência
// de giros em intervalo fixo antes do resultado final, com histórico dos
// últimos sorteados.
package sorteio

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"APEOC_GESTAO_GO/models"
)

const (
	// Quantidade de giros da animação antes do resultado final
	MaxGiros = 20
	// Intervalo padrão entre os giros
	IntervaloPadrao = 100 * time.Millisecond
	// Quantidade de resultados mantidos no histórico
	MaxHistorico = 10
)

var ErrConjuntoVazio = errors.New("não há associados disponíveis para o sorteio")

// Sorteador executa sorteios sobre um conjunto de associados. Um único
// sorteio roda por vez; o histórico é compartilhado entre as chamadas.
type Sorteador struct {
	mu        sync.Mutex
	rand      *rand.Rand
	intervalo time.Duration
	historico []models.Associado
}

// NovoSorteador cria um sorteador com o intervalo entre giros informado.
// Intervalo zero executa os giros sem pausa (útil em testes).
func NovoSorteador(intervalo time.Duration) *Sorteador {
	return &Sorteador{
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		intervalo: intervalo,
	}
}

// Sortear escolhe um associado do conjunto de forma uniforme. Antes do
// resultado são feitos MaxGiros giros intermediários, informados em onGiro
// quando fornecido. O resultado final é um giro independente e entra no
// histórico; repetições são permitidas. O contexto cancela o sorteio entre
// um giro e outro.
func (s *Sorteador) Sortear(ctx context.Context, conjunto []models.Associado, onGiro func(models.Associado)) (models.Associado, []models.Associado, error) {
	if len(conjunto) == 0 {
		return models.Associado{}, nil, ErrConjuntoVazio
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sequencia := make([]models.Associado, 0, MaxGiros)
	for i := 0; i < MaxGiros; i++ {
		giro := conjunto[s.rand.Intn(len(conjunto))]
		sequencia = append(sequencia, giro)
		if onGiro != nil {
			onGiro(giro)
		}
		if err := s.aguardar(ctx); err != nil {
			return models.Associado{}, sequencia, err
		}
	}

	final := conjunto[s.rand.Intn(len(conjunto))]

	// Mantém apenas os últimos MaxHistorico, mais recente primeiro
	s.historico = append([]models.Associado{final}, s.historico...)
	if len(s.historico) > MaxHistorico {
		s.historico = s.historico[:MaxHistorico]
	}

	return final, sequencia, nil
}

func (s *Sorteador) aguardar(ctx context.Context) error {
	if s.intervalo <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.intervalo):
		return nil
	}
}

// Historico devolve uma cópia do histórico, mais recente primeiro
func (s *Sorteador) Historico() []models.Associado {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Associado(nil), s.historico...)
}

// LimparHistorico descarta os resultados anteriores
func (s *Sorteador) LimparHistorico() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historico = nil
}
