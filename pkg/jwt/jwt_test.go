package jwt_test

import (
	"time"

	tokenIssuer "bookshelf/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		secret  []byte
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = tokenIssuer.NewJWTService(secret)
		info = tokenIssuer.TokenInfo{
			UserID:   7,
			Username: "alice",
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a token carrying the claims and a 45 minute expiry", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["sub"]).To(Equal(float64(7)))

			iat := int64(claims["iat"].(float64))
			exp := int64(claims["exp"].(float64))
			Expect(exp - iat).To(Equal(int64(tokenIssuer.TokenLifetime / time.Second)))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is intact and unexpired", func() {
			It("should return the claims", func() {
				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["username"]).To(Equal("alice"))
			})
		})

		When("the token was tampered with", func() {
			It("should fail", func() {
				_, err := service.Validate(signed + "x")
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token was signed with a different secret", func() {
			It("should fail", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				stranger, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(stranger)
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is malformed", func() {
			It("should fail", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-2 * tokenIssuer.TokenLifetime)
				}
				var err error
				signed, err = service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				tokenIssuer.TimeNow = time.Now
			})

			It("should fail even though the signature is correct", func() {
				_, err := service.Validate(signed)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("expired"))
			})
		})

		When("the token uses the none algorithm", func() {
			It("should fail", func() {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub":      7,
					"username": "alice",
				})
				tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(tokenStr)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
