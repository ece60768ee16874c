package main

import (
	"log"
	"os"

	"persona-assistant-be/internal/model"
	"persona-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the knowledge base with starter chunks. The indexer picks them up
// for embedding once the REST process publishes a re-index, or they can be
// indexed through the knowledge API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding knowledge base...")

	chunks := []model.KnowledgeChunk{
		{
			Title:   "Professional summary",
			Content: "Backend engineer focused on Go services, retrieval pipelines and event-driven systems. Currently building developer tooling and data infrastructure.",
			Source:  "resume",
		},
		{
			Title:   "Work history",
			Content: "Most recent role: senior backend engineer on a platform team, owning the ingestion pipeline and the internal search service. Previously built billing and notification systems.",
			Source:  "resume",
		},
		{
			Title:   "Portfolio assistant",
			Content: "This site's assistant is a role-conditioned RAG pipeline: pgvector retrieval over a curated knowledge base, with deterministic shortcut paths for small talk.",
			Source:  "projects",
		},
		{
			Title:   "Martial arts",
			Content: "Trains MMA several times a week, mostly grappling and muay thai. Competed as an amateur.",
			Source:  "hobbies",
		},
		{
			Title:   "Outside of work",
			Content: "Outside of work: martial arts, long-distance running, and far too much coffee.",
			Source:  "hobbies",
		},
	}

	created := 0
	for _, chunk := range chunks {
		var count int64
		db.Model(&model.KnowledgeChunk{}).Where("title = ?", chunk.Title).Count(&count)
		if count > 0 {
			color.Yellow("  skip: %s (already present)", chunk.Title)
			continue
		}
		if err := db.Create(&chunk).Error; err != nil {
			color.Red("  fail: %s (%v)", chunk.Title, err)
			continue
		}
		color.Green("  ok:   %s [%s]", chunk.Title, chunk.Source)
		created++
	}

	color.Cyan("Done. %d chunks created.", created)
}
