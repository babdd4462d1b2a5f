package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/demoshop/checkout.web/config"
	"github.com/demoshop/checkout.web/handlers"
	"github.com/demoshop/checkout.web/service"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

func main() {
	log.Namespace = "checkout.web"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		os.Exit(1)
	}

	client, err := service.NewAPIClient(cfg)
	if err != nil {
		log.Error(fmt.Errorf("error creating API client: %s. Exiting", err))
		os.Exit(1)
	}

	router := mux.NewRouter()
	chain := alice.New(log.Handler)

	handlers.Register(router, cfg, client)

	log.Info("Starting checkout.web service", log.Data{"bind_addr": cfg.BindAddr, "api_base_url": cfg.BaseURL()})
	err = http.ListenAndServe(cfg.BindAddr, chain.Then(router))

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout.web service")
}
