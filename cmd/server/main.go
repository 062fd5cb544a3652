// cmd/server/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"smpj_backend/internal/auth"
	"smpj_backend/internal/config"
	"smpj_backend/internal/routes"
	"smpj_backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := storage.SeedDefaultUsers(db); err != nil {
		log.Fatal("failed to seed users: ", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpireMin)
	r := routes.NewRouter(db, tokens)

	addr := ":" + cfg.Port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
