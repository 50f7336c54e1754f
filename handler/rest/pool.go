package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/views"

	"github.com/asaskevich/govalidator"
)

func allPoolsHandler(pools core.PoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := pools.All(r.Context())
		if err != nil {
			render.Code(w, err)
			return
		}

		poolViews := make([]*views.Pool, 0, len(all))
		for _, pool := range all {
			poolViews = append(poolViews, views.NewPool(pool))
		}

		render.JSON(w, poolViews)
	}
}

func poolHandler(pools core.PoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset string `json:"asset"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Asset) {
			render.BadRequest(w, errInvalidAsset)
			return
		}

		pool, err := pools.Find(r.Context(), params.Asset)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, views.NewPool(pool))
	}
}
