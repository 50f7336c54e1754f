package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"lendpool/core"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		logrus.Errorln(err)
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	if err := enc.Encode(H{"code": errCode, "msg": msg}); err != nil {
		logrus.Errorln(err)
	}
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err.Error())
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err.Error())
}

// Unauthorized unauthorized error
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, int(core.ErrUnauthorized), core.ErrUnauthorized.Msg())
}

// Code maps service error codes onto api responses; unknown errors render as
// a plain internal error.
func Code(w http.ResponseWriter, err error) {
	var code core.ErrorCode
	if errors.As(err, &code) {
		Error(w, httpStatus(code), int(code), code.Msg())
		return
	}

	Error(w, http.StatusInternalServerError, int(core.ErrUnknown), core.ErrUnknown.Msg())
}

func httpStatus(code core.ErrorCode) int {
	switch code {
	case core.ErrUnauthorized:
		return http.StatusUnauthorized
	case core.ErrPoolNotInitialized:
		return http.StatusNotFound
	case core.ErrUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
