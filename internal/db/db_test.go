package db_test

import (
	"context"
	"database/sql"

	"ccc/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
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
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("SaveToTable", func() {
		It("should save records without errors", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
				WithArgs("Alice", 1, "Bob", 2).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
			mock.ExpectCommit()

			err := testDB.SaveToTable(ctx, &[]Test{
				{ID: 1, Username: "Alice"},
				{ID: 2, Username: "Bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should skip empty slices", func() {
			Expect(testDB.SaveToTable(ctx, &[]Test{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should reject values that are not slice pointers", func() {
			err := testDB.SaveToTable(ctx, Test{})
			Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
		})
	})

	Describe("UpsertToTable", func() {
		It("should overwrite the given columns on conflict", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" .* ON CONFLICT \("id"\) DO UPDATE SET "username"="excluded"."username" RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()

			err := testDB.UpsertToTable(ctx, &[]Test{{ID: 1, Username: "Alice"}}, "id", "username")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should do nothing on conflict without update columns", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "tests" .* ON CONFLICT \("id"\) DO NOTHING RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()

			err := testDB.UpsertToTable(ctx, &[]Test{{ID: 1, Username: "Alice"}}, "id")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateWhereIn", func() {
		It("should update the matching records", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE id IN \(\$2,\$3\)$`).
				WithArgs("Carol", 1, 2).
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()

			err := testDB.UpdateWhereIn(ctx, &Test{}, "id", []uint{1, 2}, map[string]any{"username": "Carol"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteWhereIn", func() {
		It("should delete the matching records", func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "tests" WHERE id IN \(\$1,\$2\)$`).
				WithArgs(1, 2).
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()

			err := testDB.DeleteWhereIn(ctx, &Test{}, "id", []uint{1, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		When("the statement fails", func() {
			It("should return an error", func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests"`).WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()

				err := testDB.DeleteWhereIn(ctx, &Test{}, "id", []uint{1})
				Expect(err).To(MatchError(ContainSubstring("deleting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		It("should return all matching records", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\).*`).
				WithArgs("Alice", "Bob").
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "Alice").
					AddRow(2, "Bob"))

			var results []Test
			err := testDB.GetAllBy(ctx, "username", []string{"Alice", "Bob"}, &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[1].Username).To(Equal("Bob"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetPage", func() {
		It("should query one ordered page", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE id > \$1 ORDER BY id LIMIT \$2`).
				WithArgs(10, 2).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(11, "Alice").
					AddRow(12, "Bob"))

			var results []Test
			err := testDB.GetPage(ctx, "id > ?", []any{10}, "id", 2, &results)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ID).To(Equal(uint(11)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
