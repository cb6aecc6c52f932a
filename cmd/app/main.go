package main

import (
	"context"
	"errors"
	"os"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/color"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	color.Println(color.Bold(color.Yellow("=== Food Delivery ===")))

	if err := app.CreateSession().Run(context.Background()); err != nil {
		if errors.Is(err, cli.ErrInputClosed) {
			return
		}
		log.Fatalf("order flow: %v", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine, the defaults below cover local runs.
	_ = godotenv.Load(".env")

	return cmd.Config{
		PaymentDelay:    durationVariable("PAYMENT_DELAY", 2*time.Second),
		CookingDelay:    durationVariable("COOKING_DELAY", time.Second),
		DeliveryDelay:   durationVariable("DELIVERY_DELAY", 2*time.Second),
		SimulateDecline: boolVariable("SIMULATE_DECLINE"),
	}
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}

func boolVariable(key string) bool {
	return os.Getenv(key) == "true"
}
