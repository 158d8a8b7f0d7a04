package main

import (
	"log"

	"github.com/device-management-toolkit/oneview-redfish/config"
	"github.com/device-management-toolkit/oneview-redfish/internal/app"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	app.Run(cfg)
}
