package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/singhalaadi/taskly-capstone-project/internal/config"
	"github.com/singhalaadi/taskly-capstone-project/internal/database"
	"github.com/singhalaadi/taskly-capstone-project/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo users and their original demo tasks before serving")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// load .env first so viper's env overrides can see it
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Upload.Dir); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer database.Close(db)

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seed database: %v", err)
		}
		log.Println("demo data seeded")
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
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
