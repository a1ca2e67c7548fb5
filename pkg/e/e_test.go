package e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, ErrUniqueViolation},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrInvalidInput},
		{"other pg", &pgconn.PgError{Code: "42P01"}, ErrInternal},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), ErrDeadline},
		{"canceled", context.Canceled, ErrCanceled},
		{"unknown", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(ctx, "op", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "op")
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(context.Background(), "op", nil))
}
