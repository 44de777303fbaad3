package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EcoSentry/FloraRisk/internal/linguistic"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const speciesColumns = `id, scientific_name, common_name,
	sf, asr, via, ldd,
	vrs, sgr, ha, nmd,
	published_risk, notes,
	created_at, updated_at`

func (s *PostgresStore) CreateSpecies(ctx context.Context, sp *Species) error {
	var published *string
	if sp.PublishedRisk != nil {
		v := sp.PublishedRisk.String()
		published = &v
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO flora_species (scientific_name, common_name,
			sf, asr, via, ldd,
			vrs, sgr, ha, nmd,
			published_risk, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		sp.ScientificName, sp.CommonName,
		sp.SF, sp.ASR, sp.VIA, sp.LDD,
		sp.VRS.String(), sp.SGR.String(), sp.HA.String(), sp.NMD.String(),
		published, sp.Notes,
	).Scan(&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
}

func (s *PostgresStore) GetSpecies(ctx context.Context, id uuid.UUID) (*Species, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+speciesColumns+`
		FROM flora_species WHERE id = $1`, id)
	sp, err := scanSpecies(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return sp, err
}

func (s *PostgresStore) ListSpecies(ctx context.Context, filter Filter) ([]*Species, error) {
	query := `SELECT ` + speciesColumns + ` FROM flora_species WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.PublishedRisk != nil {
		n++
		query += fmt.Sprintf(" AND published_risk = $%d", n)
		args = append(args, filter.PublishedRisk.String())
	}
	if filter.Search != "" {
		n++
		query += fmt.Sprintf(" AND (scientific_name ILIKE $%d OR common_name ILIKE $%d)", n, n)
		args = append(args, "%"+filter.Search+"%")
	}

	query += " ORDER BY scientific_name ASC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Species
	for rows.Next() {
		sp, err := scanSpecies(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteSpecies(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM flora_species WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("species %s not found", id)
	}
	return nil
}

func scanSpecies(row pgx.Row) (*Species, error) {
	sp := &Species{}
	var commonName, published, notes sql.NullString
	var vrs, sgr, ha, nmd string
	if err := row.Scan(
		&sp.ID, &sp.ScientificName, &commonName,
		&sp.SF, &sp.ASR, &sp.VIA, &sp.LDD,
		&vrs, &sgr, &ha, &nmd,
		&published, &notes,
		&sp.CreatedAt, &sp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if commonName.Valid {
		sp.CommonName = commonName.String
	}
	if notes.Valid {
		sp.Notes = notes.String
	}

	var err error
	if sp.VRS, err = linguistic.ParseLabel(vrs); err != nil {
		return nil, fmt.Errorf("species %s: %w", sp.ID, err)
	}
	if sp.SGR, err = linguistic.ParseLabel(sgr); err != nil {
		return nil, fmt.Errorf("species %s: %w", sp.ID, err)
	}
	if sp.HA, err = linguistic.ParseLabel(ha); err != nil {
		return nil, fmt.Errorf("species %s: %w", sp.ID, err)
	}
	if sp.NMD, err = linguistic.ParseLabel(nmd); err != nil {
		return nil, fmt.Errorf("species %s: %w", sp.ID, err)
	}
	if published.Valid && !strings.EqualFold(published.String, "") {
		l, err := linguistic.ParseLabel(published.String)
		if err != nil {
			return nil, fmt.Errorf("species %s: %w", sp.ID, err)
		}
		sp.PublishedRisk = &l
	}
	return sp, nil
}
