package db_test

import (
	"context"
	"database/sql"

	"bookshelf/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type book struct {
	ID       uint `gorm:"primaryKey"`
	Title    string
	Author   string
	ImageURL string
}

var _ = Describe("PostgresDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		It("should insert the record and write back the generated id", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "books"`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
			mock.ExpectCommit()

			rec := book{Title: "Dune"}
			Expect(testDB.Create(ctx, &rec)).To(Succeed())
			Expect(rec.ID).To(Equal(uint(5)))
		})

		It("should wrap insert failures", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "books"`).
				WillReturnError(sql.ErrConnDone)
			mock.ExpectRollback()

			rec := book{Title: "Dune"}
			err := testDB.Create(ctx, &rec)
			Expect(err).To(MatchError(sql.ErrConnDone))
		})
	})

	Describe("GetOneBy", func() {
		It("should return the matching record", func() {
			mock.ExpectQuery(`SELECT \* FROM "books" WHERE id = \$1`).
				WithArgs(5, 1).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "image_url"}).
					AddRow(5, "Dune", "Herbert", ""))

			var rec book
			Expect(testDB.GetOneBy(ctx, "id", 5, &rec)).To(Succeed())
			Expect(rec.Title).To(Equal("Dune"))
		})

		It("should map a missing row to ErrNotFound", func() {
			mock.ExpectQuery(`SELECT \* FROM "books" WHERE id = \$1`).
				WithArgs(5, 1).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "image_url"}))

			var rec book
			err := testDB.GetOneBy(ctx, "id", 5, &rec)
			Expect(err).To(MatchError(db.ErrNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should return every row", func() {
			mock.ExpectQuery(`SELECT \* FROM "books"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author", "image_url"}).
					AddRow(1, "first", "", "").
					AddRow(2, "second", "", ""))

			var recs []book
			Expect(testDB.GetAll(ctx, &recs)).To(Succeed())
			Expect(recs).To(HaveLen(2))
		})
	})

	Describe("UpdateByID", func() {
		It("should report the number of matched rows", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "books" SET`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			rows, err := testDB.UpdateByID(ctx, &book{}, uint(5), map[string]any{"title": "renamed"})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(int64(1)))
		})

		It("should report zero when nothing matches", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`UPDATE "books" SET`).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			rows, err := testDB.UpdateByID(ctx, &book{}, uint(99), map[string]any{"title": "renamed"})
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeZero())
		})
	})

	Describe("DeleteByID", func() {
		It("should issue the delete", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM "books"`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			Expect(testDB.DeleteByID(ctx, &book{}, uint(5))).To(Succeed())
		})
	})
})
