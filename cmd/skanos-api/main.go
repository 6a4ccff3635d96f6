package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Local development loads secrets from .env; production sets real
	// environment variables, so a missing file is fine.
	_ = godotenv.Load()

	Execute()
}
