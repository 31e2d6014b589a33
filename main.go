package main

import (
	"github.com/joho/godotenv"

	"github.com/theirongolddev/outgo/cmd"
)

func main() {
	// Optional .env so OUTGO_* variables can live next to a project.
	_ = godotenv.Load()

	cmd.Execute()
}
