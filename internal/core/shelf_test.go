package core_test

import (
	"context"
	"errors"

	"bookshelf/internal/core"
	"bookshelf/internal/core/fake"
	"bookshelf/internal/repository"
	tokenIssuer "bookshelf/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Shelf", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		shelf *core.Shelf

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		shelf = core.NewShelf(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			authMsg core.AuthMessage
			userId  uint
			err     error
		)

		BeforeEach(func() {
			authMsg = core.AuthMessage{
				Username: "alice",
				Password: "pw1",
			}
		})

		JustBeforeEach(func() {
			userId, err = shelf.Register(ctx, authMsg)
		})

		When("the account is created", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = func(_ context.Context, user *repository.User) error {
					user.ID = 42
					return nil
				}
			})

			It("should return the generated id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(userId).To(Equal(uint(42)))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal("alice"))
			})

			It("should store a hash that verifies against the password", func() {
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.PasswordHash).NotTo(Equal("pw1"))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1"))).To(Succeed())
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(errors.New("duplicate key value violates unique constraint"))
			})

			It("should return the persistence error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("duplicate key"))
				Expect(userId).To(BeZero())
			})
		})
	})

	Describe("Login", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = shelf.Login(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should issue a token for the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.TokenInfo{
					UserID:   7,
					Username: "testuser",
				}))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "nottestpass"
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})
	})

	Describe("AddBook", func() {
		var (
			record core.BookRecord
			book   core.BookRecord
			err    error
		)

		BeforeEach(func() {
			record = core.BookRecord{
				Title:    "The Go Programming Language",
				Author:   "Donovan & Kernighan",
				ImageURL: "https://example.com/gopl.jpg",
			}
		})

		JustBeforeEach(func() {
			book, err = shelf.AddBook(ctx, record)
		})

		When("the book is created", func() {
			BeforeEach(func() {
				fakeRepo.CreateBookStub = func(_ context.Context, b *repository.Book) error {
					b.ID = 3
					return nil
				}
			})

			It("should return the stored book", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book).To(Equal(core.BookRecord{
					ID:       3,
					Title:    record.Title,
					Author:   record.Author,
					ImageURL: record.ImageURL,
				}))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateBookReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetBooks", func() {
		var (
			books []core.BookRecord
			err   error
		)

		JustBeforeEach(func() {
			books, err = shelf.GetBooks(ctx)
		})

		When("books exist", func() {
			BeforeEach(func() {
				fakeRepo.GetBooksReturns([]repository.Book{
					{ID: 1, Title: "first"},
					{ID: 2, Title: "second"},
				}, nil)
			})

			It("should return them all", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(books).To(HaveLen(2))
				Expect(books[0].ID).To(Equal(uint(1)))
				Expect(books[1].Title).To(Equal("second"))
			})
		})

		When("there are no books", func() {
			BeforeEach(func() {
				fakeRepo.GetBooksReturns([]repository.Book{}, nil)
			})

			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(books).To(BeEmpty())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetBooksReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetBook", func() {
		var (
			book core.BookRecord
			err  error
		)

		JustBeforeEach(func() {
			book, err = shelf.GetBook(ctx, 5)
		})

		When("the book exists", func() {
			BeforeEach(func() {
				fakeRepo.GetBookByIDReturns(repository.Book{ID: 5, Title: "found"}, nil)
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book.ID).To(Equal(uint(5)))
				Expect(book.Title).To(Equal("found"))
			})
		})

		When("the book does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetBookByIDReturns(repository.Book{}, repository.ErrBookNotFound)
			})

			It("should return ErrBookNotFound", func() {
				Expect(err).To(MatchError(core.ErrBookNotFound))
			})
		})
	})

	Describe("UpdateBook", func() {
		var (
			fields map[string]any
			book   core.BookRecord
			err    error
		)

		BeforeEach(func() {
			fields = map[string]any{"title": "renamed"}
		})

		JustBeforeEach(func() {
			book, err = shelf.UpdateBook(ctx, 5, fields)
		})

		When("the update applies", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBookReturns(repository.Book{ID: 5, Title: "renamed"}, nil)
			})

			It("should return the updated book", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book.Title).To(Equal("renamed"))

				Expect(fakeRepo.UpdateBookCallCount()).To(Equal(1))
				_, id, gotFields := fakeRepo.UpdateBookArgsForCall(0)
				Expect(id).To(Equal(uint(5)))
				Expect(gotFields).To(Equal(fields))
			})
		})

		When("no fields are supplied", func() {
			BeforeEach(func() {
				fields = map[string]any{}
				fakeRepo.GetBookByIDReturns(repository.Book{ID: 5, Title: "unchanged"}, nil)
			})

			It("should return the current row without updating", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book.Title).To(Equal("unchanged"))
				Expect(fakeRepo.UpdateBookCallCount()).To(Equal(0))
			})
		})

		When("the book does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBookReturns(repository.Book{}, repository.ErrBookNotFound)
			})

			It("should return ErrBookNotFound", func() {
				Expect(err).To(MatchError(core.ErrBookNotFound))
			})
		})
	})

	Describe("DeleteBook", func() {
		var err error

		JustBeforeEach(func() {
			err = shelf.DeleteBook(ctx, 5)
		})

		When("the delete succeeds", func() {
			It("should not error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteBookCallCount()).To(Equal(1))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteBookReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
