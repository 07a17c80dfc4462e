package product

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createProductTableQuery = `
		CREATE TABLE IF NOT EXISTS coffee_product (
			ord SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			price INT NOT NULL DEFAULT 0,
			emoji TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			description TEXT NOT NULL DEFAULT ''
		)
	`
	countProductsQuery = `SELECT COUNT(*) FROM coffee_product`
	listProductsQuery  = `
		SELECT name, price, emoji, category, tags, description
		FROM coffee_product
		ORDER BY ord
	`
	getProductByNameQuery = `
		SELECT name, price, emoji, category, tags, description
		FROM coffee_product
		WHERE name = $1
	`
	insertProductQuery = `
		INSERT INTO coffee_product (name, price, emoji, category, tags, description)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	deleteProductsQuery = `DELETE FROM coffee_product`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Migrate creates the catalog table and seeds it when it is empty.
func (r *PostgresRepository) Migrate(seed []Product) error {
	if _, err := r.db.Exec(createProductTableQuery); err != nil {
		return fmt.Errorf("create coffee_product table: %w", err)
	}
	var count int
	if err := r.db.QueryRow(countProductsQuery).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}
	return r.Reset(seed)
}

// List returns the catalog. A failing query yields an empty catalog so the
// storefront degrades to "no products" rather than an error page.
func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByName(name string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByNameQuery, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// Reset deletes all products and inserts the provided list in a single transaction,
// preserving the given order.
func (r *PostgresRepository) Reset(products []Product) error {
	if err := checkUniqueNames(products); err != nil {
		return err
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(deleteProductsQuery); err != nil {
		return err
	}
	for _, p := range products {
		if _, err := tx.Exec(insertProductQuery,
			p.Name,
			p.Price,
			p.Emoji,
			string(p.Category),
			pq.Array(p.Tags),
			p.Description,
		); err != nil {
			return fmt.Errorf("insert %q: %w", p.Name, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		category    string
		emoji       sql.NullString
		description sql.NullString
		tags        pq.StringArray
	)
	if err := scanner.Scan(&p.Name, &p.Price, &emoji, &category, &tags, &description); err != nil {
		return Product{}, err
	}
	p.Category = Category(category)
	p.Tags = []string(tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if emoji.Valid {
		p.Emoji = emoji.String
	}
	if description.Valid {
		p.Description = description.String
	}
	return p, nil
}
