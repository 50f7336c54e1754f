package rest

import (
	"net/http"

	"lendpool/core"
	"lendpool/handler/param"
	"lendpool/handler/render"
	"lendpool/handler/request"

	"github.com/asaskevich/govalidator"
)

type lendParams struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
	// Trace is the trace of the settled pay request; required for supply
	// and repay, ignored for withdraw and borrow.
	Trace string `json:"trace_id"`
}

func bindLendParams(r *http.Request) (*core.User, *lendParams, error) {
	user, ok := request.UserFrom(r.Context())
	if !ok {
		return nil, nil, core.ErrUnauthorized
	}

	var params lendParams
	if err := param.Binding(r, &params); err != nil {
		return nil, nil, core.ErrInvalidParameter
	}
	if !govalidator.IsUUID(params.Asset) {
		return nil, nil, core.ErrInvalidParameter
	}

	return user, &params, nil
}

func supplyHandler(lendz core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, params, err := bindLendParams(r)
		if err != nil {
			render.Code(w, err)
			return
		}
		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Trace) {
			render.Code(w, core.ErrInvalidParameter)
			return
		}

		if err := lendz.Supply(r.Context(), user.UserID, params.Asset, amount, params.Trace); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"amount": amount.String()})
	}
}

func withdrawHandler(lendz core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, params, err := bindLendParams(r)
		if err != nil {
			render.Code(w, err)
			return
		}
		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		actual, err := lendz.Withdraw(r.Context(), user.UserID, params.Asset, amount)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"amount": actual.String()})
	}
}

func repayHandler(lendz core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, params, err := bindLendParams(r)
		if err != nil {
			render.Code(w, err)
			return
		}
		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		if !govalidator.IsUUID(params.Trace) {
			render.Code(w, core.ErrInvalidParameter)
			return
		}

		actual, err := lendz.Repay(r.Context(), user.UserID, params.Asset, amount, params.Trace)
		if err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"amount": actual.String()})
	}
}

func borrowHandler(lendz core.LendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, params, err := bindLendParams(r)
		if err != nil {
			render.Code(w, err)
			return
		}
		amount, err := parseAmount(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := lendz.Borrow(r.Context(), user.UserID, params.Asset, amount); err != nil {
			render.Code(w, err)
			return
		}

		render.JSON(w, render.H{"amount": amount.String()})
	}
}
