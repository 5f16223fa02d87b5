package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/alexdata/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
