package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appentries "github.com/shukatsu-tools/es-analyzer/internal/application/entries"
	"github.com/shukatsu-tools/es-analyzer/internal/config"
	"github.com/shukatsu-tools/es-analyzer/internal/domain/entries"
	openaiclient "github.com/shukatsu-tools/es-analyzer/internal/infra/ai/openai"
	mysqldb "github.com/shukatsu-tools/es-analyzer/internal/infra/db/mysql"
	pgdb "github.com/shukatsu-tools/es-analyzer/internal/infra/db/postgres"
	"github.com/shukatsu-tools/es-analyzer/internal/infra/httpserver"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect DB + run schema migrations
	var db *sql.DB
	var repo entries.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err = pgdb.Connect(ctx, cfg.DSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		if err := pgdb.Migrate(db); err != nil {
			log.Fatalf("migrate error: %v", err)
		}
		repo = pgdb.NewRepository(db)
	default:
		db, err = mysqldb.Connect(ctx, cfg.DSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		if err := mysqldb.Migrate(db); err != nil {
			log.Fatalf("migrate error: %v", err)
		}
		repo = mysqldb.NewRepository(db)
	}
	defer db.Close()

	// init scorer client
	analyzer := openaiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// init service
	svc := &appentries.Service{
		Repo:     repo,
		Analyzer: analyzer,
	}

	// init router
	handler := httpserver.NewRouter(svc, db, cfg.Server.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// analyze blocks on the scorer round trip
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
