package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ErrReferenced},
		{"other pg error", &pgconn.PgError{Code: "57014"}, nil},
		{"plain error", errors.New("boom"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateErr(tt.in)
			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Errorf("translateErr(%v) = %v, want %v", tt.in, got, tt.want)
				}
				return
			}
			// Untranslated errors pass through unchanged.
			if !errors.Is(got, tt.in) && !(tt.in == nil && got == nil) {
				t.Errorf("translateErr(%v) = %v, want passthrough", tt.in, got)
			}
		})
	}
}
