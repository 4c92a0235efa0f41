package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(RewardsService), "*"),
	wire.Bind(new(IRewardsService), new(*RewardsService)),

	wire.Struct(new(VerificationService), "*"),
	wire.Bind(new(IVerificationService), new(*VerificationService)),

	wire.Struct(new(RatingService), "*"),
	wire.Bind(new(IRatingService), new(*RatingService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),

	NewLookupService,
	NewOssService,
)
