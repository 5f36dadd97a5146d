package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "task-scheduler/internal/auth/repository"
	"task-scheduler/internal/model"
)

const userColumns = `id, email, name, password_hash, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	var name, passwordHash sql.NullString
	err := row.Scan(&u.ID, &u.Email, &name, &passwordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.Name = name.String
	u.PasswordHash = passwordHash.String
	return u, nil
}

// CreateUser inserts a new User row. An email collision maps to
// ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW(), NOW())
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), strings.ToLower(opt.Email), opt.Name, opt.PasswordHash,
	)
	user, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single User by ID or email. Returns zero-value User
// (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, strings.ToLower(opt.Email))
		idx++
	}
	if len(conditions) == 0 {
		conditions = []string{"1=0"}
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1",
		userColumns, strings.Join(conditions, " AND "))

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}
