//go:build ignore

// Regenerates the Ent client into gen/ent. Run from the repository root:
//
//	go run db/ent/generate.go
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/finbot-vn/finbot/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
