package main

import (
	"errors"
	"log"
	"net/http"

	adapthttp "mealplanner/internal/adapter/http"
	"mealplanner/internal/adapter/memory"
	"mealplanner/internal/adapter/openai"
	"mealplanner/internal/adapter/pdf"
	"mealplanner/internal/adapter/postgres"
	"mealplanner/internal/app"
	"mealplanner/internal/config"
	"mealplanner/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var repo domain.PlanRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		repo = db
	} else {
		log.Printf("DATABASE_URL not set; keeping plan history in memory")
		repo = memory.New()
	}

	gen := openai.New(cfg.APIKey, cfg.Model, cfg.BaseURL)
	planSvc := app.NewPlanService(gen, repo)

	h := adapthttp.New(planSvc, pdf.Renderer{}, cfg.WebDir).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
