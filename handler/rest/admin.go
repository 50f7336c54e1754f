package rest

import (
	"errors"
	"math/big"
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/request"

	"github.com/asaskevich/govalidator"
)

var errInvalidPrice = errors.New("invalid price")

func initPoolHandler(adminz core.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := request.UserFrom(r.Context())
		if !ok {
			render.Unauthorized(w)
			return
		}

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

		if err := adminz.InitPool(r.Context(), user.UserID, params.Asset); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"asset": params.Asset})
	}
}

func setLTVHandler(adminz core.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := request.UserFrom(r.Context())
		if !ok {
			render.Unauthorized(w)
			return
		}

		var params struct {
			Asset string `json:"asset"`
			LTV   int64  `json:"ltv"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Asset) {
			render.BadRequest(w, errInvalidAsset)
			return
		}

		if err := adminz.SetLTV(r.Context(), user.UserID, params.Asset, params.LTV); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"asset": params.Asset, "ltv": params.LTV})
	}
}

func setPriceHandler(adminz core.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := request.UserFrom(r.Context())
		if !ok {
			render.Unauthorized(w)
			return
		}

		var params struct {
			Asset string `json:"asset"`
			Price string `json:"price"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Asset) {
			render.BadRequest(w, errInvalidAsset)
			return
		}

		price, ok := new(big.Int).SetString(params.Price, 10)
		if !ok {
			render.BadRequest(w, errInvalidPrice)
			return
		}

		if err := adminz.SetPrice(r.Context(), user.UserID, params.Asset, price); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"asset": params.Asset, "price": price.String()})
	}
}
