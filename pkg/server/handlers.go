package server

import (
	"Meadow/handler"
)

type Handlers struct {
	Catalog *handler.Catalog
	Support *handler.Support
	Order   *handler.Order
	Profile *handler.Profile
	Webhook *handler.Webhook
}
