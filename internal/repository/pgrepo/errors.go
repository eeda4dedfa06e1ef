package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fsdevblog/groph-resto/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для pgx.ErrNoRows возвращает domain.ErrRecordNotFound.
//   - Для нарушения уникального ключа (23505) возвращает domain.ErrDuplicateKey.
//   - Для нарушения внешнего ключа (23503) возвращает domain.ErrReferencedRecord.
//   - Все остальные ошибки возвращаются как domain.ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolationErr(pgErr):
			errType = domain.ErrDuplicateKey
		case isForeignKeyViolationErr(pgErr):
			errType = domain.ErrReferencedRecord
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

func isForeignKeyViolationErr(err *pgconn.PgError) bool {
	return err.Code == foreignKeyViolationCode
}
