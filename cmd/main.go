package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms/openai"
	"gopkg.in/yaml.v3"

	"traiteur/internal/api"
	"traiteur/internal/casebase"
	"traiteur/internal/database"
	"traiteur/internal/engine"
	"traiteur/internal/knowledge"
	"traiteur/internal/learning"
	"traiteur/internal/monitoring"
	"traiteur/internal/similarity"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	addr       = flag.String("addr", "", "Listen address, overrides the config file")
)

// Config represents the application configuration.
type Config struct {
	Server   api.Config      `yaml:"server"`
	Engine   engine.Config   `yaml:"engine"`
	Learning learning.Config `yaml:"learning"`

	CatalogPath     string `yaml:"catalog_path"`
	KnowledgePath   string `yaml:"knowledge_path"`
	IngredientsPath string `yaml:"ingredients_path"`
	DatabasePath    string `yaml:"database_path"`
	HistoryPath     string `yaml:"history_path"`
	OpenAIKey       string `yaml:"openai_key"`
}

func main() {
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		config.Server.Addr = *addr
	}

	kb, err := loadKnowledge(config)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	ingredients, err := loadIngredients(config)
	if err != nil {
		log.Fatalf("Failed to load ingredient knowledge: %v", err)
	}

	var db *database.DB
	if config.DatabasePath != "" {
		db, err = database.Open(config.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
	}

	catalog, err := loadCatalog(config, db)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d dishes, %d beverages", catalog.DishCount(), catalog.BeverageCount())

	store, err := loadCases(catalog, db)
	if err != nil {
		log.Fatalf("Failed to load cases: %v", err)
	}
	log.Printf("Case pool loaded: %d cases", store.Len())

	embedder, err := buildEmbedder(config)
	if err != nil {
		log.Fatalf("Failed to initialize embedder: %v", err)
	}

	metrics := monitoring.NewMetrics()
	eng := engine.New(catalog, store, kb, ingredients, embedder, config.Engine, config.Learning, metrics)

	server := api.NewServer(eng, metrics, config.Server)

	listenAddr := config.Server.Addr
	if listenAddr == "" {
		listenAddr = ":8080"
	}
	httpServer := &http.Server{
		Addr:    listenAddr,
		Handler: server.Router(),
	}

	// Graceful shutdown: snapshot the case pool and learning history
	// before exiting.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if db != nil {
			if err := db.SaveCases(eng.Store().All()); err != nil {
				log.Printf("Failed to save case pool: %v", err)
			} else {
				log.Printf("Case pool saved: %d cases", eng.Store().Len())
			}
		}
		if config.HistoryPath != "" {
			if err := eng.SaveLearningHistory(config.HistoryPath); err != nil {
				log.Printf("Failed to save learning history: %v", err)
			}
		}
	}()

	log.Printf("Starting server on %s", listenAddr)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads the YAML configuration. A missing file is not an
// error; the built-in defaults apply.
func loadConfig(path string) (*Config, error) {
	config := &Config{
		Engine:   engine.DefaultConfig(),
		Learning: learning.DefaultConfig(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file %s not found, using defaults", path)
			return config, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return config, nil
}

func loadKnowledge(config *Config) (*knowledge.Base, error) {
	if config.KnowledgePath == "" {
		return knowledge.NewBase(), nil
	}
	return knowledge.LoadBase(config.KnowledgePath)
}

func loadIngredients(config *Config) (*knowledge.Ingredients, error) {
	if config.IngredientsPath == "" {
		return knowledge.NewIngredients(), nil
	}
	return knowledge.LoadIngredients(config.IngredientsPath)
}

// loadCatalog prefers the database snapshot, then the catalog file,
// then the built-in sample catalog.
func loadCatalog(config *Config, db *database.DB) (*casebase.Catalog, error) {
	if db != nil {
		catalog, found, err := db.LoadCatalog()
		if err != nil {
			return nil, err
		}
		if found {
			return catalog, nil
		}
	}
	if config.CatalogPath != "" {
		if _, err := os.Stat(config.CatalogPath); err == nil {
			catalog, err := casebase.LoadCatalog(config.CatalogPath)
			if err != nil {
				return nil, err
			}
			if db != nil {
				if err := db.SaveCatalog(catalog); err != nil {
					log.Printf("Failed to persist catalog: %v", err)
				}
			}
			return catalog, nil
		}
	}
	log.Println("Using built-in sample catalog")
	return casebase.SampleCatalog(), nil
}

// loadCases restores the stored case pool, seeding from the catalog
// when the pool is empty.
func loadCases(catalog *casebase.Catalog, db *database.DB) (*casebase.Store, error) {
	store := casebase.NewStore()
	if db != nil {
		cases, err := db.LoadCases()
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			store.Add(c)
		}
	}
	if store.Len() == 0 {
		for _, c := range casebase.SeedCases(catalog) {
			store.Add(c)
		}
	}
	return store, nil
}

// buildEmbedder wires the OpenAI embedding client when a key is
// configured, otherwise the deterministic local embedder.
func buildEmbedder(config *Config) (*similarity.Embedder, error) {
	if config.OpenAIKey == "" {
		return similarity.NewLocalEmbedder(), nil
	}
	client, err := openai.New(openai.WithToken(config.OpenAIKey))
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}
	return similarity.NewEmbedder(client)
}
