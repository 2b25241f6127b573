package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"TapeLab/internal/tape"
)

// History log size limit per user: oldest saved configurations are pruned
// once the cap is exceeded.
const maxSavedConfigs = 100

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

type SavedConfig struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Config    tape.Config `json:"config"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int, error)

	SaveConfig(ctx context.Context, userID int, name string, cfg tape.Config) (int, error)
	ListConfigs(ctx context.Context, userID int) ([]SavedConfig, error)
	DeleteConfig(ctx context.Context, userID, configID int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
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

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1 RETURNING id"
	err := r.db.QueryRowContext(ctx, query, id, login, description).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) SaveConfig(ctx context.Context, userID int, name string, cfg tape.Config) (int, error) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}

	var id int
	query := "INSERT INTO saved_configs (user_id, name, payload, created_at) VALUES ($1, $2, $3, NOW()) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, userID, name, payload).Scan(&id); err != nil {
		return 0, err
	}

	// Enforce the history cap: drop the oldest entries past the limit.
	prune := `DELETE FROM saved_configs
		WHERE user_id=$1 AND id NOT IN (
			SELECT id FROM saved_configs WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2
		)`
	if _, err := r.db.ExecContext(ctx, prune, userID, maxSavedConfigs); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresUserRepository) ListConfigs(ctx context.Context, userID int) ([]SavedConfig, error) {
	query := "SELECT id, name, payload, created_at FROM saved_configs WHERE user_id=$1 ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedConfig
	for rows.Next() {
		var sc SavedConfig
		var payload []byte
		if err := rows.Scan(&sc.ID, &sc.Name, &payload, &sc.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &sc.Config); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepository) DeleteConfig(ctx context.Context, userID, configID int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM saved_configs WHERE user_id=$1 AND id=$2", userID, configID)
	return err
}
