// internal/modules/verify/infra/pg/catalog_repo.go
package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"prodcheck/internal/modules/verify/domain"
)

const (
	stateFresh   = "fresh"
	stateExpired = "expired"
)

// CatalogRepo reads the code lists from the product_codes table:
//
//	CREATE TABLE product_codes (
//	    code  text PRIMARY KEY,
//	    state text NOT NULL CHECK (state IN ('fresh', 'expired'))
//	);
type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Lists(ctx context.Context) (domain.CodeLists, error) {
	rows, err := r.db.Query(ctx, `SELECT code, state FROM product_codes ORDER BY code`)
	if err != nil {
		return domain.CodeLists{}, fmt.Errorf("query product_codes: %w", err)
	}
	defer rows.Close()

	out := domain.CodeLists{Fresh: []string{}, Expired: []string{}}
	for rows.Next() {
		var code, state string
		if err := rows.Scan(&code, &state); err != nil {
			return domain.CodeLists{}, fmt.Errorf("scan product_codes: %w", err)
		}
		appendByState(&out, code, state)
	}
	if err := rows.Err(); err != nil {
		return domain.CodeLists{}, fmt.Errorf("read product_codes: %w", err)
	}
	return out, nil
}

// appendByState files a row under its list. Rows with any other state are
// skipped.
func appendByState(lists *domain.CodeLists, code, state string) {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case stateFresh:
		lists.Fresh = append(lists.Fresh, code)
	case stateExpired:
		lists.Expired = append(lists.Expired, code)
	}
}
