//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"roomly/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
			want: infra.KindNotFound,
		},
		{
			name: "wrapped no rows",
			err:  fmt.Errorf("scan booking: %w", pgx.ErrNoRows),
			want: infra.KindNotFound,
		},
		{
			name: "unique violation on the reference",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "bookings_reference_key"},
			want: infra.KindDuplicateKey,
		},
		{
			name: "exclusion violation on the interval",
			err:  &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			want: infra.KindConflict,
		},
		{
			name: "wrapped exclusion violation",
			err:  fmt.Errorf("insert booking: %w", &pgconn.PgError{Code: "23P01"}),
			want: infra.KindConflict,
		},
		{
			name: "unrelated pg error",
			err:  &pgconn.PgError{Code: "42P01"},
			want: infra.KindDBFailure,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: infra.KindDBFailure,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.ClassifyPgErr(tc.err))
		})
	}
}

func TestRepositoryError(t *testing.T) {
	t.Run("kind survives wrapping", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
		err := infra.WrapRepoErr(infra.ClassifyPgErr(cause), "failed to create booking", cause)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))

		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})

	t.Run("non-repository errors match no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
	})
}
