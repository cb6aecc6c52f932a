package cmd

import "time"

type Config struct {
	PaymentDelay    time.Duration
	CookingDelay    time.Duration
	DeliveryDelay   time.Duration
	SimulateDecline bool
}
