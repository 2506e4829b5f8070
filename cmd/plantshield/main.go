package main

import (
	"log"

	"github.com/manikandan032/plant-disease-detection/internal/app"
	"github.com/manikandan032/plant-disease-detection/internal/app/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	application.Run()
}
