package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ikkim/fyyur/config"
	"github.com/ikkim/fyyur/internal/app/repository"
	"github.com/ikkim/fyyur/internal/app/service"
	"github.com/ikkim/fyyur/internal/db"
	"github.com/ikkim/fyyur/internal/seed"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	conn := db.GetDB()
	venueRepo := repository.NewVenueRepository(conn)
	artistRepo := repository.NewArtistRepository(conn)
	showRepo := repository.NewShowRepository(conn)

	loader := seed.NewLoader(
		service.NewVenueService(conn, venueRepo, showRepo, time.Now),
		service.NewArtistService(conn, artistRepo, showRepo, time.Now),
		service.NewShowService(conn, showRepo, venueRepo, artistRepo, time.Now),
	)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	data, err := seed.ReadWorkbook(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Rows to import: %d venues, %d artists, %d shows\n",
		len(data.Venues), len(data.Artists), len(data.Shows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	result, err := loader.Import(context.Background(), data)
	if err != nil {
		log.Fatal("Import stopped:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Imported %d venues, %d artists, %d shows (%d skipped)\n",
		result.Venues, result.Artists, result.Shows, result.Skipped)
}
