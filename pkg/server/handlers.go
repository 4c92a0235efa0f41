package server

import (
	"Conbini/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Product      *handler.Product
	Rating       *handler.Rating
	Verification *handler.Verification
	Wallet       *handler.Wallet
	Admin        *handler.Admin
}
