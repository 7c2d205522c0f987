package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/gin-restaurante-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurante-api/internal/services"
)

func main() {
	// Parse command line flags
	path := flag.String("db", "restaurante.sqlite", "SQLite database file")
	limit := flag.Int("limit", models.DefaultLimit, "Page size")
	pages := flag.Int("pages", 4, "Number of pages to print")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	registry, err := database.NewRegistry(&models.Plato{})
	if err != nil {
		log.Fatal("Failed to build schema registry:", err)
	}
	if err := registry.Migrate(db); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	ctx := context.Background()
	svc := services.NewPlatoService(db)

	// Fill the table with 15 dishes when it is empty
	count, err := svc.CountPlatos(ctx)
	if err != nil {
		log.Fatal("Failed to count platos:", err)
	}
	if count == 0 {
		fmt.Println("Agregando platos de ejemplo...")
		for i := 1; i <= 15; i++ {
			input := models.PlatoCreate{Nombre: fmt.Sprintf("Plato %d", i), Precio: 10.0 + float64(i)}
			if _, err := svc.CreatePlato(ctx, input); err != nil {
				log.Fatal("Failed to create plato:", err)
			}
		}
	}

	fmt.Printf("\nResultados de paginación (limit=%d):\n", *limit)
	for page := 0; page < *pages; page++ {
		skip := page * *limit
		items, total, err := svc.ListPlatos(ctx, skip, *limit)
		if err != nil {
			log.Fatal("Failed to list platos:", err)
		}
		envelope := models.NewPage(items, total, skip, *limit)
		fmt.Printf("\nPágina %d de %d (skip=%d):\n", envelope.Page, envelope.TotalPages, skip)
		for _, plato := range envelope.Items {
			fmt.Printf("  id=%d, nombre=%s, precio=%.2f\n", plato.ID, plato.Nombre, plato.Precio)
		}
	}
}
