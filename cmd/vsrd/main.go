package main

import (
	"context"
	"log"

	"github.com/NVIDIA/serializer-registry/pkg/api"
)

func main() {
	if err := api.Serve(context.Background()); err != nil {
		log.Fatal(err)
	}
}
