package main

import (
	"context"
	"fmt"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/demoshop/checkout.web/config"
	"github.com/demoshop/checkout.web/service"
)

func main() {
	log.Namespace = "checkout.web.create-admin"

	cfg, err := config.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	client, err := service.NewAPIClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	bootstrapper := &service.AdminBootstrapper{Registrar: client, Out: os.Stdout, Err: os.Stderr}
	if err := bootstrapper.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
