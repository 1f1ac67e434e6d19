package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/metrics"
)

// accessLogMiddleware logs every request and records its latency under the route
// template, so ids do not blow up label cardinality.
func (s *Server) accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		route := routeName(r)
		status := wrw.GetStatusCode()
		elapsed := time.Since(start)
		metrics.HTTPRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", wrw.BytesWritten()),
			zap.Duration("duration", elapsed),
		}
		if id, ok := mux.Vars(r)["id"]; ok {
			fields = append(fields, zap.String("request_id", id))
		}
		if status >= http.StatusInternalServerError {
			s.logger.Warn("request served", fields...)
			return
		}
		s.logger.Debug("request served", fields...)
	})
}

func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unknown"
	}
	return tpl
}
