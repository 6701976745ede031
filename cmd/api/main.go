package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"homework-assistant/config"
	_ "homework-assistant/docs" // Swagger docs
	"homework-assistant/internal/assignment"
	assignmentUC "homework-assistant/internal/assignment/usecase"
	"homework-assistant/internal/chat"
	chatUC "homework-assistant/internal/chat/usecase"
	"homework-assistant/internal/conversation"
	conversationUC "homework-assistant/internal/conversation/usecase"
	"homework-assistant/internal/dialogue"
	"homework-assistant/internal/httpserver"
	"homework-assistant/internal/nlu/emotion"
	"homework-assistant/internal/nlu/entity"
	"homework-assistant/internal/nlu/intent"
	"homework-assistant/pkg/datemath"
	"homework-assistant/pkg/gcalendar"
	"homework-assistant/pkg/inference"
	"homework-assistant/pkg/log"
)

// @title       Homework Assistant API
// @description Local chat assistant and assignment tracker for the desktop shell.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Homework Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s in %s", cfg.Storage.Driver, cfg.Storage.DataDir)

	// 3. Timezone and date parser
	timezone := cfg.Assistant.Timezone
	dateParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		dateParser, _ = datemath.NewParser(timezone)
	}
	location := dateParser.Location()

	// 4. Storage
	st, err := openStores(cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", err)
		}
	}()

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Assignment store and conversation memory
	assignments := assignmentUC.New(logger, st.assignments, assignmentUC.Config{
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Location:   location,
	})
	if err := assignments.Load(ctx); err != nil {
		logger.Warnf(ctx, "Assignments could not be loaded, starting empty: %v", err)
	}

	memory := conversationUC.New(logger, st.conversations)
	if err := memory.Load(ctx); err != nil {
		logger.Warnf(ctx, "Chat history could not be loaded, starting empty: %v", err)
	}

	// 7. Scoring providers
	inferenceCfg, err := inference.NewConfig(&cfg.Inference)
	if err != nil {
		logger.Error(ctx, "Invalid inference config: ", err)
		return
	}
	providers, err := inference.InitializeProviders(&cfg.Inference)
	if err != nil {
		logger.Warnf(ctx, "No configured scoring provider available, using the lexicon: %v", err)
		providers = []inference.Provider{inference.NewLexiconProvider()}
	}
	scorer := inference.NewManager(providers, inferenceCfg, logger)
	logger.Infof(ctx, "Scoring providers: %v", scorer.Providers())

	// 8. NLU
	classifier, err := intent.NewClassifier(logger, scorer, intent.Config{
		Epsilon:   cfg.Assistant.IntentEpsilon,
		CacheSize: cfg.Assistant.ClassifierCacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent classifier: ", err)
		return
	}
	detector := emotion.NewDetector(logger, scorer, emotion.Config{})
	extractor := entity.NewExtractor(logger, dateParser)

	// 9. Dialogue manager and chat boundary
	manager := dialogue.New(logger, dialogue.Deps{
		Classifier: classifier,
		Detector:   detector,
		Extractor:  extractor,
		Store:      assignments,
		Memory:     memory,
		Status:     scorer,
	}, dialogue.Config{
		MinConfidence:     cfg.Assistant.IntentMinConfidence,
		SuggestConfidence: cfg.Assistant.IntentSuggestConfidence,
		EmotionThreshold:  cfg.Assistant.EmotionThreshold,
		InferenceTimeout:  cfg.Assistant.InferenceTimeout,
		HorizonDays:       cfg.Assistant.WorkloadHorizonDays,
		Location:          location,
	})
	chatUseCase := chatUC.New(logger, manager, memory, chat.Config{
		HistoryLimit:    cfg.Assistant.HistoryLimit,
		ContextTTL:      cfg.Assistant.ContextTTL,
		ContextCapacity: cfg.Assistant.ContextCapacity,
	})

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		AllowRemote:     cfg.HTTPServer.AllowRemote,
		Assignments:     assignments,
		Chat:            chatUseCase,
		HorizonDays:     cfg.Assistant.WorkloadHorizonDays,
		Location:        location,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	flush(ctx, logger, assignments, memory)
	logger.Info(ctx, "Server stopped gracefully")
}

// flush retries any write still pending before exit.
func flush(ctx context.Context, l log.Logger, assignments assignment.UseCase, memory conversation.UseCase) {
	ctx = context.WithoutCancel(ctx)
	if err := assignments.Flush(ctx); err != nil {
		l.Warnf(ctx, "Pending assignment changes were not saved: %v", err)
	}
	if err := memory.Flush(ctx); err != nil {
		l.Warnf(ctx, "Pending chat history was not saved: %v", err)
	}
}
