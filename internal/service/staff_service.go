package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fsdevblog/groph-resto/internal/domain"
	"github.com/fsdevblog/groph-resto/internal/repository/repoargs"
	"github.com/fsdevblog/groph-resto/internal/transport/api/tokens"
	"github.com/fsdevblog/groph-resto/pkg/uow"
)

const JWTTokenExpire = 8 * time.Hour

type StaffService struct {
	uow            uow.UOW
	staffRepo      StaffRepository
	jwtTokenSecret []byte
}

func NewStaffService(u uow.UOW, jwtTokenSecret []byte) (*StaffService, error) {
	staffRepo, err := uow.GetRepositoryAs[StaffRepository](u, uow.RepositoryName(repoargs.StaffRepoName))
	if err != nil {
		return nil, err
	}
	return &StaffService{
		uow:            u,
		staffRepo:      staffRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

// Login аутентифицирует сотрудника по логину и паролю. Возвращает сотрудника и jwt токен,
// id из токена используется дальше как id действующего администратора во всех командах.
// При неверном пароле вернется domain.ErrPasswordMissMatch.
func (s *StaffService) Login(ctx context.Context, username, password string) (*domain.Staff, string, error) {
	staff, findErr := s.staffRepo.FindByUsername(ctx, username)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, "", errors.Join(
			fmt.Errorf("logging in staff `%s`", username),
			domain.ErrPasswordMissMatch,
		)
	}

	token, tokenErr := tokens.GenerateStaffJWT(staff.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in staff `%s`: %w", username, tokenErr)
	}
	return staff, token, nil
}
