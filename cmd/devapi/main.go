package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"shopadmin/internal/config"
	"shopadmin/internal/devapi"
)

func main() {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.LoadDevAPI()

	store := devapi.NewStore(devapi.MustOpen(cfg.DBPath))
	if err := store.EnsureAdmin(cfg.AdminUser, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

	srv := devapi.New(store, devapi.NewJWTManager(cfg.JWTSecret), cfg.APIPath, logger)
	if err := srv.Seed(); err != nil {
		log.Fatal(err)
	}

	logger.Info("devapi listening", "port", cfg.Port, "db", cfg.DBPath, "apiPath", cfg.APIPath)
	log.Fatal(srv.Router().Run(":" + cfg.Port))
}
