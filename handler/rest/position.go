package rest

import (
	"errors"
	"net/http"

	"lendpool/core"
	"lendpool/handler/render"
	"lendpool/handler/request"
	"lendpool/handler/views"
)

var errInvalidAsset = errors.New("invalid asset id")

func positionHandler(positions core.PositionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, ok := request.UserFrom(ctx)
		if !ok {
			render.Unauthorized(w)
			return
		}

		position, err := positions.Find(ctx, user.UserID)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, views.NewPosition(position))
	}
}

// healthHandler serves the cached health snapshot and falls back to a fresh
// evaluation when nothing is cached yet.
func healthHandler(positions core.PositionStore, healths core.HealthStore, healthz core.HealthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, ok := request.UserFrom(ctx)
		if !ok {
			render.Unauthorized(w)
			return
		}

		if healths != nil {
			if health, err := healths.Find(ctx, user.UserID); err == nil {
				render.JSON(w, views.NewHealth(health))
				return
			}
		}

		position, err := positions.Find(ctx, user.UserID)
		if err != nil {
			render.Code(w, err)
			return
		}
		health, err := healthz.Evaluate(ctx, position)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, views.NewHealth(health))
	}
}

func transfersHandler(transfers core.TransferStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := transfers.Top(r.Context(), 100)
		if err != nil {
			render.Code(w, err)
			return
		}

		transferViews := make([]*views.Transfer, 0, len(top))
		for _, transfer := range top {
			transferViews = append(transferViews, views.NewTransfer(transfer))
		}

		render.JSON(w, transferViews)
	}
}
