package models

type UnitOfMeasure struct {
	ID   int    `json:"unit_id"`
	Name string `json:"unit_name"`
}
