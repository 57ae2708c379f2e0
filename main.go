package main

import (
	"log"

	"github.com/cloudkitchen/cloudkitchen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
