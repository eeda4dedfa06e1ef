package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

type StaffRepository struct {
	conn uow.DBTX
}

func NewStaffRepository(conn uow.DBTX) *StaffRepository {
	return &StaffRepository{conn: conn}
}

func (s *StaffRepository) FindByUsername(ctx context.Context, username string) (*domain.Staff, error) {
	var staff domain.Staff
	err := s.conn.QueryRow(
		ctx,
		`SELECT id, created_at, updated_at, username, password, full_name FROM staff WHERE username = $1`,
		username,
	).Scan(
		&staff.ID,
		&staff.CreatedAt,
		&staff.UpdatedAt,
		&staff.Username,
		&staff.Password,
		&staff.FullName,
	)
	if err != nil {
		return nil, convertErr(err, "finding staff by username `%s`", username)
	}
	return &staff, nil
}
