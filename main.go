package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javierportillar/saviaInventory-sub001/internal/config"
	"github.com/javierportillar/saviaInventory-sub001/internal/database"
	"github.com/javierportillar/saviaInventory-sub001/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := config.InitLogger(cfg.Log)

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Infof("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
