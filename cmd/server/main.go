package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"shopadmin/internal/catalog"
	"shopadmin/internal/config"
	"shopadmin/internal/session"
	"shopadmin/internal/webui"
)

func main() {
	// load .env from the current dir and parents (running from cmd/server works too)
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client := catalog.New(cfg.BaseURL, cfg.APIPath)
	mgr := session.NewManager(cfg.TokenCookie, client, logger)
	srv := webui.New(cfg, client, mgr, logger)

	logger.Info("console listening", "port", cfg.Port, "upstream", cfg.BaseURL)
	log.Fatal(srv.Router().Run(":" + cfg.Port))
}
