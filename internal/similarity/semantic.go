package similarity

import (
	"context"
	"hash/fnv"
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/embeddings"

	"traiteur/internal/knowledge"
	"traiteur/internal/models"
)

const embeddingDim = 100

// Embedder produces text embeddings for semantic similarity. When a
// langchaingo embedder is configured it is used, with the deterministic
// local embedding as a fallback, so the engine keeps working offline.
type Embedder struct {
	remote embeddings.Embedder

	mu    sync.Mutex
	cache map[string][]float32
}

// NewLocalEmbedder returns an embedder that only uses the
// deterministic local embedding.
func NewLocalEmbedder() *Embedder {
	return &Embedder{cache: make(map[string][]float32)}
}

// NewEmbedder wraps a langchaingo embedding client.
func NewEmbedder(client embeddings.EmbedderClient) (*Embedder, error) {
	remote, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, err
	}
	return &Embedder{remote: remote, cache: make(map[string][]float32)}, nil
}

// Embed returns the embedding for a text, from cache when available.
func (e *Embedder) Embed(text string) []float32 {
	e.mu.Lock()
	if v, ok := e.cache[text]; ok {
		e.mu.Unlock()
		return v
	}
	e.mu.Unlock()

	v := e.compute(text)

	e.mu.Lock()
	e.cache[text] = v
	e.mu.Unlock()
	return v
}

func (e *Embedder) compute(text string) []float32 {
	if e.remote != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		v, err := e.remote.EmbedQuery(ctx, text)
		if err == nil {
			return v
		}
		log.Printf("embedder: remote embedding failed, using local: %v", err)
	}
	return localEmbedding(text)
}

// TextSimilarity returns the cosine similarity of two texts mapped to
// [0, 1].
func (e *Embedder) TextSimilarity(a, b string) float64 {
	sim := cosineSimilarity(e.Embed(a), e.Embed(b))
	return (float64(sim) + 1) / 2
}

// CultureSimilarity scores two traditions by comparing textual
// descriptions built from their knowledge-base profiles.
func (e *Embedder) CultureSimilarity(a, b models.CulturalTradition, kb *knowledge.Base) float64 {
	return e.TextSimilarity(describeCulture(a, kb), describeCulture(b, kb))
}

// DishSimilarity scores two dishes by their textual descriptions.
func (e *Embedder) DishSimilarity(a, b *models.Dish) float64 {
	return e.TextSimilarity(describeDish(a), describeDish(b))
}

func describeCulture(t models.CulturalTradition, kb *knowledge.Base) string {
	parts := []string{string(t), "cuisine"}
	if profile, ok := kb.CulturalProfile(t); ok {
		parts = append(parts, profile.KeyIngredients...)
		for _, c := range profile.TypicalCategories {
			parts = append(parts, string(c))
		}
		for _, s := range profile.Styles {
			parts = append(parts, string(s))
		}
	}
	return strings.Join(parts, " ")
}

func describeDish(d *models.Dish) string {
	parts := []string{d.Name, string(d.Category), string(d.Temperature), string(d.Complexity)}
	for _, s := range d.Styles {
		parts = append(parts, string(s))
	}
	for _, f := range d.Flavors {
		parts = append(parts, string(f))
	}
	for _, t := range d.CulturalTraditions {
		parts = append(parts, string(t))
	}
	parts = append(parts, d.Ingredients...)
	return strings.Join(parts, " ")
}

// localEmbedding builds a deterministic pseudo-random embedding per
// word, so identical texts always land on identical vectors.
func localEmbedding(text string) []float32 {
	words := strings.Fields(strings.ToLower(text))
	embedding := make([]float32, embeddingDim)

	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		rng := rand.New(rand.NewSource(int64(h.Sum32())))
		for i := range embedding {
			embedding[i] += rng.Float32()*2 - 1
		}
	}

	normalizeVector(embedding)
	return embedding
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / float32(math.Sqrt(float64(normA)*float64(normB)))
}

func normalizeVector(v []float32) {
	var norm float32
	for _, x := range v {
		norm += x * x
	}
	norm = float32(math.Sqrt(float64(norm)))
	if norm != 0 {
		for i := range v {
			v[i] /= norm
		}
	}
}
