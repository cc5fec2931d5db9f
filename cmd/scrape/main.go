package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/config"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/corpus"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/crawler"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/embedding"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/language"
	"github.com/Iamfloke/jobthai-ai-rag-chatbot/internal/logger"
)

func main() {
	// Load .env file if it exists (for API key)
	_ = godotenv.Load()
	logger.Init()

	keyword := flag.String("keyword", "", "Search keyword (defaults to SEARCH_KEYWORD)")
	dataDir := flag.String("data-dir", "", "Directory for snapshot files (defaults to DATA_DIR)")
	maxPages := flag.Int("max-pages", 0, "Limit listing pages to crawl, 0 = all")
	schedule := flag.String("schedule", "", "Cron spec for recurring runs, empty = run once")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *keyword != "" {
		cfg.Keyword = *keyword
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	client := openai.NewClient(cfg.OpenAIKey)
	normalizer := language.NewNormalizer(
		language.NewDetector(),
		language.NewOpenAITranslator(client, cfg.ChatModel),
	)
	embedder := embedding.NewOpenAIEmbedder(client, cfg.EmbeddingModel)
	store := corpus.NewStore(cfg.DataDir)
	builder := corpus.NewBuilder(normalizer, embedder, store)
	c := crawler.New(cfg.Keyword, *maxPages)

	run := func() {
		ctx := context.Background()
		jobs, err := c.CrawlAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Crawl failed")
			return
		}

		stats, err := builder.Build(ctx, time.Now(), jobs)
		if err != nil {
			log.Error().Err(err).Msg("Corpus build failed")
			return
		}
		log.Info().
			Int("raw", stats.RawCount).
			Int("embedded", stats.EmbeddedCount).
			Int("skipped", stats.Skipped).
			Msg("Batch complete")
	}

	if *schedule == "" {
		run()
		return
	}

	cr := cron.New()
	if _, err := cr.AddFunc(*schedule, run); err != nil {
		log.Fatal().Err(err).Str("schedule", *schedule).Msg("Invalid cron spec")
	}
	cr.Start()
	log.Info().Str("schedule", *schedule).Msg("Scheduler started")

	// Run immediately so the corpus exists before the first tick.
	run()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cr.Stop()
	log.Info().Msg("Scheduler stopped")
}
