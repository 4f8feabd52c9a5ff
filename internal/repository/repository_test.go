package repository_test

import (
	"context"
	"errors"

	"bookshelf/internal/db"
	"bookshelf/internal/repository"
	"bookshelf/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ShelfRepository", func() {
	var (
		repo        *repository.ShelfRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewShelfRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate the user and book tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTablesCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTablesArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Book{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTablesReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:     "alice",
				PasswordHash: "$2a$10$hash",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, &user)
		})

		When("the insert succeeds", func() {
			It("should pass the user to storage", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("username"))
					Expect(value).To(Equal("alice"))
					*(entity.(*repository.User)) = repository.User{
						ID:           1,
						Username:     "alice",
						PasswordHash: "$2a$10$hash",
					}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))
				Expect(user.Username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetBookByID", func() {
		var (
			book repository.Book
			err  error
		)

		JustBeforeEach(func() {
			book, err = repo.GetBookByID(ctx, 5)
		})

		When("the book exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("id"))
					Expect(value).To(Equal(uint(5)))
					*(entity.(*repository.Book)) = repository.Book{ID: 5, Title: "found"}
					return nil
				}
			})

			It("should return the book", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book.Title).To(Equal("found"))
			})
		})

		When("the book does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrBookNotFound", func() {
				Expect(err).To(MatchError(repository.ErrBookNotFound))
			})
		})
	})

	Describe("GetBooks", func() {
		var (
			books []repository.Book
			err   error
		)

		JustBeforeEach(func() {
			books, err = repo.GetBooks(ctx)
		})

		When("storage succeeds", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(_ context.Context, entity any) error {
					*(entity.(*[]repository.Book)) = []repository.Book{
						{ID: 1}, {ID: 2},
					}
					return nil
				}
			})

			It("should return all books", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(books).To(HaveLen(2))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateBook", func() {
		var (
			fields map[string]any
			book   repository.Book
			err    error
		)

		BeforeEach(func() {
			fields = map[string]any{"title": "renamed"}
		})

		JustBeforeEach(func() {
			book, err = repo.UpdateBook(ctx, 5, fields)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByIDReturns(1, nil)
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					*(entity.(*repository.Book)) = repository.Book{ID: 5, Title: "renamed"}
					return nil
				}
			})

			It("should return the updated row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(book.Title).To(Equal("renamed"))

				_, _, id, gotFields := fakeStorage.UpdateByIDArgsForCall(0)
				Expect(id).To(Equal(uint(5)))
				Expect(gotFields).To(Equal(fields))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByIDReturns(0, nil)
			})

			It("should return ErrBookNotFound", func() {
				Expect(err).To(MatchError(repository.ErrBookNotFound))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByIDReturns(0, fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteBook", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteBook(ctx, 5)
		})

		When("the delete succeeds", func() {
			It("should pass the id to storage", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, id := fakeStorage.DeleteByIDArgsForCall(0)
				Expect(id).To(Equal(uint(5)))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
