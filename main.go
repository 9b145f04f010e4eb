package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/fstr-tourism/pereval-api/cmd/app"
)

// @contact.name   FSTR API Support
// @contact.email  support@pereval.online
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token of a moderator
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
