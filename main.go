package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/echoes-archive/feria-api/cmd/app"
)

// @contact.name   Echoes Archive
// @contact.email  logistics@echoes-archive.hn
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
