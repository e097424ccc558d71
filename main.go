package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/chefskiss/festival-api/cmd/app"
)

// @title           Festival Applications API
// @version         1.0
// @description     Vendor and workshop application intake and review.
//
// @contact.name   Festival Organizers
// @contact.email  hello@chefskiss.example
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
