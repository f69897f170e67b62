package main

import (
	_ "madeireira_api/docs"
	"madeireira_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Madeireira API
// @version         1.0
// @description     Wood-product pricing and budgeting service backed by a flat-file JSON store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
