package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"threatwatch/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen     string
		next     http.Handler
		chain    http.Handler
		logs     *observer.ObservedLogs
		w        *httptest.ResponseRecorder
		req      *http.Request
		incoming string
	)

	BeforeEach(func() {
		seen = ""
		incoming = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})

		var core zapcore.Core
		core, logs = observer.New(zapcore.InfoLevel)
		chain = middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
		chain = middleware.NewRequestIDMiddleware().RequestID(chain)
		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		req = httptest.NewRequest("GET", "/threatwatch/stats", nil)
		if incoming != "" {
			req.Header.Set(middleware.RequestIDHeader, incoming)
		}
		chain.ServeHTTP(w, req)
	})

	It("assigns a request id", func() {
		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("logs the served request", func() {
		entries := logs.FilterMessage("request served").All()
		Expect(entries).To(HaveLen(1))
		fields := entries[0].ContextMap()
		Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(fields).To(HaveKeyWithValue("path", "/threatwatch/stats"))
		Expect(fields).To(HaveKeyWithValue("request_id", seen))
	})

	When("the caller supplies a request id", func() {
		BeforeEach(func() {
			incoming = "6f1c2a2e-8f0b-4c44-9a38-6d3f0f1f5a10"
		})

		It("keeps it", func() {
			Expect(seen).To(Equal(incoming))
		})
	})

	When("the supplied id is not a uuid", func() {
		BeforeEach(func() {
			incoming = "<script>"
		})

		It("replaces it", func() {
			Expect(seen).NotTo(Equal(incoming))
			Expect(seen).NotTo(BeEmpty())
		})
	})
})
