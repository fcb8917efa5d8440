package handler

import (
	"buildandbeyond/internal/infrastructure/firebase"
	"buildandbeyond/internal/usecase"
)

var (
	engagementHandler *EngagementHandler
	bidHandler        *BidHandler
	favoriteHandler   *FavoriteHandler
	hiringHandler     *HiringHandler
	adminHandler      *AdminHandler
	healthHandler     *HealthHandler
)

func Setup(
	engagementUseCase *usecase.EngagementUseCase,
	bidUseCase *usecase.BidUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	hiringUseCase *usecase.HiringUseCase,
	adminUseCase *usecase.AdminUseCase,
	authClient *firebase.FirebaseAuthClient,
) {
	engagementHandler = NewEngagementHandler(engagementUseCase)
	bidHandler = NewBidHandler(bidUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	hiringHandler = NewHiringHandler(hiringUseCase)
	adminHandler = NewAdminHandler(adminUseCase, authClient)
	healthHandler = NewHealthHandler()
}

func GetEngagementHandler() *EngagementHandler {
	return engagementHandler
}

func GetBidHandler() *BidHandler {
	return bidHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetHiringHandler() *HiringHandler {
	return hiringHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
