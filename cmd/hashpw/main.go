// Command hashpw prints the bcrypt hash to put into GROCERY_ADMIN_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"grocerystore/internal/auth"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: hashpw <password>")
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("hash failed")
	}
	fmt.Println(hash)
}
