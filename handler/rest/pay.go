package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/pkg/id"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// payRequestsHandler builds the payment url a user opens to move funds into
// pool custody before calling supply or repay with the returned trace.
func payRequestsHandler(system *core.System, walletz core.WalletService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset  string          `json:"asset"`
			Amount decimal.Decimal `json:"amount"`
			Memo   string          `json:"memo"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Asset) {
			render.BadRequest(w, errInvalidAsset)
			return
		}

		trace := id.GenTraceID()
		url, err := walletz.PaySchemaURL(params.Amount, params.Asset, system.ClientID, trace, params.Memo)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"trace_id": trace,
			"url":      url,
		})
	}
}
