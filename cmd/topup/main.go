package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/topup/internal/app"
	"github.com/dmitrijs2005/topup/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := app.New(cfg).Run(ctx); err != nil {
		// Diagnostics go to stdout; any failure means exit code 1.
		fmt.Println(err)
		os.Exit(1)
	}
}
