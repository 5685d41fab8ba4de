package main

import (
	"github.com/cmdrwatch/cmdrwatch/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
