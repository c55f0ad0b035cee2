package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/config"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/database"
	"github.com/Viranga-Lakshani/Employees-Attendance-Manegement-System/internal/router"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	seed := flag.Bool("seed", false, "seed demo employees and sessions, then exit")
	flag.Parse()

	// load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if *seed {
		if err := database.Seed(db, cfg.Security.BcryptCost); err != nil {
			log.Fatalf("seed database: %v", err)
		}
		log.Println("seeded demo data (admin/adminpass, alice/alicepass, bob/bobpass)")
		return
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
