package main

import (
	"log"

	"rebalancer/cmd"

	_ "github.com/lib/pq"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	apiHandler := cmd.NewApiHandler(deps)
	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
