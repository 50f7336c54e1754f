package param

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// Binding binds url params, query values and the json body onto v, in that
// order, later sources overriding earlier ones.
func Binding(r *http.Request, v interface{}) error {
	values := r.URL.Query()
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for idx, key := range rctx.URLParams.Keys {
			values.Set(key, rctx.URLParams.Values[idx])
		}
	}

	if len(values) > 0 {
		if err := decoder.Decode(v, values); err != nil {
			return err
		}
	}

	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
