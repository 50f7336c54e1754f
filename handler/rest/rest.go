package rest

import (
	"errors"
	"math/big"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	system *core.System,
	pools core.PoolStore,
	positions core.PositionStore,
	transfers core.TransferStore,
	healths core.HealthStore,
	healthz core.HealthService,
	lendz core.LendingService,
	adminz core.AdminService,
	walletz core.WalletService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pools", allPoolsHandler(pools))
	router.Get("/pools/{asset}", poolHandler(pools))
	router.Get("/transfers", transfersHandler(transfers))

	router.Get("/me/position", positionHandler(positions))
	router.Get("/me/health", healthHandler(positions, healths, healthz))

	router.Post("/supply", supplyHandler(lendz))
	router.Post("/withdraw", withdrawHandler(lendz))
	router.Post("/repay", repayHandler(lendz))
	router.Post("/borrow", borrowHandler(lendz))

	router.Post("/pay-requests", payRequestsHandler(system, walletz))

	router.Post("/admin/pools", initPoolHandler(adminz))
	router.Put("/admin/ltv", setLTVHandler(adminz))
	router.Put("/admin/price", setPriceHandler(adminz))

	return router
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.New("missing amount")
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.New("invalid amount")
	}
	return v, nil
}
