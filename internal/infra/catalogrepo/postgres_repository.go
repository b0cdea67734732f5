package catalogrepo

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spfmatch/spfmatch/internal/domain/catalog"
)

// PostgresRepository loads curated sunscreen rows from Postgres. It serves
// deployments that mirror the spreadsheet into a database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Load implements catalog.Source.
func (r *PostgresRepository) Load(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, fitzpatrick_scale, skin_types, filter_type, spf, vehicle,
		       tint, price, size, unit_price, description, image, link
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var (
		product     catalog.Product
		filterType  string
		tint        string
		unitPrice   sql.NullFloat64
		description sql.NullString
		image       sql.NullString
		link        sql.NullString
	)
	err := row.Scan(
		&product.Name,
		&product.FitzpatrickScale,
		&product.SkinTypes,
		&filterType,
		&product.SPF,
		&product.Vehicle,
		&tint,
		&product.Price,
		&product.Size,
		&unitPrice,
		&description,
		&image,
		&link,
	)
	if err != nil {
		return catalog.Product{}, err
	}
	product.FilterType = catalog.FilterType(filterType)
	product.Tint = catalog.Tint(tint)
	product.UnitPrice = unitPrice.Float64
	product.Description = description.String
	product.Image = image.String
	product.Link = link.String
	return product, nil
}

var _ catalog.Source = (*PostgresRepository)(nil)
