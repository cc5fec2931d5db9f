package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/api"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/config"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/corpus"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/embedding"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/language"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/recommend"
)

func main() {
	// Load .env file if it exists (for API key)
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	client := openai.NewClient(cfg.OpenAIKey)
	normalizer := language.NewNormalizer(
		language.NewDetector(),
		language.NewOpenAITranslator(client, cfg.ChatModel),
	)
	embedder := embedding.NewOpenAIEmbedder(client, cfg.EmbeddingModel)
	store := corpus.NewStore(cfg.DataDir)
	recommender := recommend.New(normalizer, embedder, store)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware())

	handler := api.NewHandler(recommender)
	r.POST("/api/recommend", handler.Recommend)
	r.GET("/health", handler.Health)

	log.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
