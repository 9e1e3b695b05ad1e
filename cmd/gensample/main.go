// Command gensample writes the bundled 17-line sample weather dataset to a
// path, for demos and manual testing.
//
// Usage:
//
//	go run ./cmd/gensample -out weatherdata.csv
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/couchcryptid/weather-report/internal/source"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the sample CSV")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	if err := source.WriteSample(*out); err != nil {
		return err
	}
	log.Printf("wrote sample dataset: %s", *out)
	return nil
}
