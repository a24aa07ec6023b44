package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/shoplist/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shoplist failed: %v\n", err)
		os.Exit(1)
	}
}
