package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// CalculationRecord is a saved flooding calculation. Payload holds the full
// request/result pair as JSON so a report can be regenerated later.
type CalculationRecord struct {
	ID             int             `json:"id"`
	ProjectName    string          `json:"project_name"`
	RoomName       string          `json:"room_name"`
	Hazard         string          `json:"hazard"`
	TotalLb        float64         `json:"total_lb"`
	CylindersTotal int             `json:"cylinders_total"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID int, rec CalculationRecord) (int, error)
	ListCalculations(ctx context.Context, userID int) ([]CalculationRecord, error)
	GetCalculation(ctx context.Context, userID, id int) (CalculationRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, rec CalculationRecord) (int, error) {
	var id int
	query := `INSERT INTO calculations (user_id, project_name, room_name, hazard, total_lb, cylinders_total, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		userID, rec.ProjectName, rec.RoomName, rec.Hazard,
		rec.TotalLb, rec.CylindersTotal, rec.Payload, time.Now()).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID int) ([]CalculationRecord, error) {
	query := `SELECT id, project_name, room_name, hazard, total_lb, cylinders_total, created_at
		FROM calculations WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		if err := rows.Scan(&rec.ID, &rec.ProjectName, &rec.RoomName, &rec.Hazard,
			&rec.TotalLb, &rec.CylindersTotal, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *PostgresRepository) GetCalculation(ctx context.Context, userID, id int) (CalculationRecord, error) {
	var rec CalculationRecord
	query := `SELECT id, project_name, room_name, hazard, total_lb, cylinders_total, payload, created_at
		FROM calculations WHERE user_id=$1 AND id=$2`
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&rec.ID, &rec.ProjectName,
		&rec.RoomName, &rec.Hazard, &rec.TotalLb, &rec.CylindersTotal, &rec.Payload, &rec.CreatedAt)
	return rec, err
}
