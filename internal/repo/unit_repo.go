package repo

import (
	"context"
	"database/sql"
	"fmt"

	"grocerystore/internal/models"
)

type UnitRepo struct {
	db *sql.DB
}

func NewUnitRepo(conn *sql.DB) *UnitRepo {
	return &UnitRepo{db: conn}
}

func (r *UnitRepo) AllUnits(ctx context.Context) ([]models.UnitOfMeasure, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT unit_id, unit_name FROM unit_convert ORDER BY unit_id`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	units := []models.UnitOfMeasure{}
	for rows.Next() {
		var unit models.UnitOfMeasure
		if err := rows.Scan(&unit.ID, &unit.Name); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}
