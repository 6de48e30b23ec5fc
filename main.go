package main

import (
	_ "github.com/joho/godotenv/autoload" // Load .env before config runs.

	"github.com/pasarku/pasarku-api/cmd/app"
)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by POST /users/login
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
