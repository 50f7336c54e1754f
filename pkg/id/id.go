package id

import (
	"github.com/fox-one/pkg/uuid"
)

// GenTraceID new normal traceID
func GenTraceID() string {
	return uuid.New()
}
