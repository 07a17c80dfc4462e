package product

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productColumns = []string{"name", "price", "emoji", "category", "tags", "description"}

func TestList_ScansTags(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productColumns).
		AddRow("موكا", 20, "🍫", "espresso", "{hot,sweet,chocolate}", "d").
		AddRow("كركديه بارد", 12, nil, "tea", "{cold,floral}", nil)
	mock.ExpectQuery("FROM coffee_product").WillReturnRows(rows)

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].Category != CategoryEspresso || !all[0].HasTag("chocolate") {
		t.Fatalf("unexpected first product %+v", all[0])
	}
	if all[1].Emoji != "" || len(all[1].Tags) != 2 {
		t.Fatalf("unexpected second product %+v", all[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_QueryErrorYieldsEmptyCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM coffee_product").WillReturnError(errors.New("no such table"))

	if got := repo.List(); len(got) != 0 {
		t.Fatalf("expected empty catalog, got %d products", len(got))
	}
}

func TestGetByName_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE name = ").WithArgs("شاي").WillReturnRows(sqlmock.NewRows(productColumns))

	if _, err := repo.GetByName("شاي"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReset_InsertsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	products := DefaultCatalog()[:2]
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM coffee_product").WillReturnResult(sqlmock.NewResult(0, 16))
	for _, p := range products {
		mock.ExpectExec("INSERT INTO coffee_product").
			WithArgs(p.Name, p.Price, p.Emoji, string(p.Category), sqlmock.AnyArg(), p.Description).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	if err := repo.Reset(products); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReset_RejectsDuplicateNames(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	p := DefaultCatalog()[0]
	if err := repo.Reset([]Product{p, p}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestMigrate_SkipsSeedWhenPopulated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS coffee_product").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(16))

	if err := repo.Migrate(DefaultCatalog()); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
