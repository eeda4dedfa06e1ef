package pgrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/groph-resto/internal/domain"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil passthrough", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrReferencedRecord},
		{name: "anything else", err: errors.New("connection reset"), want: domain.ErrUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := convertErr(c.err, "deleting table %d", 5)
			if c.want == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, c.want)
		})
	}
}

func TestConvertErr_WrappedPgError(t *testing.T) {
	// драйвер может отдать PgError завернутым, errors.As обязан его достать.
	wrapped := errors.Join(errors.New("exec failed"), &pgconn.PgError{Code: "23503"})
	require.ErrorIs(t, convertErr(wrapped, "deleting table %d", 5), domain.ErrReferencedRecord)
}
