//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewSessionStore,
	NewCatalogService,
	NewProductService,
	NewOrderService,
	NewSupportService,
)
