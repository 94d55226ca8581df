package main

import (
	"fmt"
	"log"

	"github.com/fatouibra/Projet-Fatou-sub001/configs"
	"github.com/fatouibra/Projet-Fatou-sub001/middlewares"
	"github.com/fatouibra/Projet-Fatou-sub001/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub := routes.RegisterRoutes(r, configs.DB(), cfg)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
