package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewRating,
	NewWallet,
	NewRewardEvent,
	NewVerification,
)
