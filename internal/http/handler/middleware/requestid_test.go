package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"bookshelf/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request

		seenID string
		next   http.Handler
	)

	BeforeEach(func() {
		seenID = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v := r.Context().Value(middleware.RequestIDKey); v != nil {
				seenID = v.(string)
			}
		})

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/book/books", nil)
	})

	JustBeforeEach(func() {
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
	})

	When("the client sends no id", func() {
		It("should generate one and echo it back", func() {
			Expect(seenID).NotTo(BeEmpty())
			Expect(uuid.Validate(seenID)).To(Succeed())
			Expect(w.Header().Get("X-Request-Id")).To(Equal(seenID))
		})
	})

	When("the client sends an id", func() {
		BeforeEach(func() {
			req.Header.Set("X-Request-Id", "client-id")
		})

		It("should keep the client id", func() {
			Expect(seenID).To(Equal("client-id"))
			Expect(w.Header().Get("X-Request-Id")).To(Equal("client-id"))
		})
	})
})
