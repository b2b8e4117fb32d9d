package main

import (
	"github.com/NVIDIA/serializer-registry/pkg/cli"
)

func main() {
	cli.Execute()
}
