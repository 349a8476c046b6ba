// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы все фигуры
// брали случайные значения из одного (seeded) источника.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// UniformInt returns a random integer in [low, high], both ends inclusive.
// When high < low the bounds are swapped.
func (s *PRNGService) UniformInt(low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + s.rng.Intn(high-low+1)
}

// Choice returns a uniformly chosen element of options, or "" when it is empty.
func (s *PRNGService) Choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.rng.Intn(len(options))]
}
