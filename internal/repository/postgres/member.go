package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/dsc-roster/internal/domain"
)

// MemberRepository реализует repository.MemberRepository для PostgreSQL
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository создает новый экземпляр MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberColumns = `id, name, role, photo, description, created_at, updated_at`

// Create сохраняет нового участника
func (r *MemberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, role, photo, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.Photo,
		member.Description,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrMemberExists
		}
		return err
	}

	return nil
}

// List возвращает всех участников, отсортированных по времени создания
func (r *MemberRepository) List(ctx context.Context) ([]*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// GetByID получает участника по ID
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`

	member, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}

// Update перезаписывает поля участника
func (r *MemberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $1, role = $2, photo = $3, description = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.Exec(ctx, query,
		member.Name,
		member.Role,
		member.Photo,
		member.Description,
		member.UpdatedAt,
		member.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// Delete удаляет участника по ID
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// scanMember читает одну строку team_members
func scanMember(row pgx.Row) (*domain.TeamMember, error) {
	var member domain.TeamMember
	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.Photo,
		&member.Description,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}
