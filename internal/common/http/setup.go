package http

import (
	"net/http"

	"github.com/peopleregistry/backend/internal/common/constants"
	"github.com/peopleregistry/backend/internal/common/httpmetrics"
	"github.com/peopleregistry/backend/internal/common/logger"
)

func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	collector := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware

	return securityHeaders(recovery(traceID(maxRequestSize(collector.Wrap(handler)))))
}
