package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker migrate | seed | smoke <baseURL>")
	}

	var err error
	switch os.Args[1] {
	case "migrate":
		err = RunMigrate()
	case "seed":
		err = RunSeed()
	case "smoke":
		err = RunSmoke(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
