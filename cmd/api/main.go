package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/database"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
	"github.com/xavierca1/ligue-outreach/internal/infra/worker"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	statusRepo := database.NewLeadStatusRepository(db)
	warmupRepo := database.NewWarmupRepository(db)

	// 2. Fila
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// 3. UseCases
	importLeadsUC := usecase.NewImportLeadsUseCase(leadRepo)
	suppressUC := usecase.NewSuppressLeadUseCase(statusRepo)

	// 4. Worker de supressão (consome a fila que o webhook alimenta)
	suppressionWorker := queue.NewWorker(rabbitMQ.Ch, suppressUC)
	go suppressionWorker.Start(queue.QueueName)

	// 5. Janitor de envios pendurados
	janitor := worker.NewPendingSendJanitor(db)
	go janitor.Start(context.Background())

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo)
	importHandler := handlers.NewImportHandler(importLeadsUC)
	webhookHandler := handlers.NewWebhookHandler(producer)
	warmupHandler := handlers.NewWarmupHandler(warmupRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.CaptureLead)
	r.Post("/leads/import", importHandler.Handle)
	r.Post("/webhook", webhookHandler.Handle)
	r.Get("/warmup/status/{domain}", warmupHandler.GetStatusHandler)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	log.Printf("🔥 Server Ligue Outreach rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
