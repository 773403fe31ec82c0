package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro")))
}

func TestWrapErr_ConservaDeadline(t *testing.T) {
	err := wrapErr("get profile", context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestWrapErr_ErrorDeConsultaNoEsIndisponibilidad(t *testing.T) {
	err := wrapErr("insert", &pgconn.PgError{Code: "42P01"})
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "insert")
}

func TestNullString(t *testing.T) {
	assert.Nil(t, nullString(""))
	assert.Equal(t, "x", *nullString("x"))
	assert.Equal(t, "", stringOrEmpty(nil))
}

type fakeNetErr struct{}

func (fakeNetErr) Error() string   { return "read tcp 10.0.0.2:5432: connection reset by peer" }
func (fakeNetErr) Timeout() bool   { return false }
func (fakeNetErr) Temporary() bool { return false }

func TestWrapErr_ConexionPerdidaEsIndisponibilidad(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"eof a mitad de consulta", fmt.Errorf("receive message: %w", io.ErrUnexpectedEOF)},
		{"error de red", fakeNetErr{}},
		{"conexión cerrada", fmt.Errorf("query: %w", net.ErrClosed)},
		{"conn closed de pgx", errors.New("conn closed")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := wrapErr("list businesses", tc.err)
			assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		})
	}
}

func TestWrapErr_IdConFormatoInvalido(t *testing.T) {
	err := wrapErr("get business by id", &pgconn.PgError{Code: "22P02"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestContainsPattern_ComodinesLiterales(t *testing.T) {
	assert.Equal(t, "%cafe nandu%", containsPattern("cafe nandu"))
	assert.Equal(t, `%100\% natural%`, containsPattern("100% natural"))
	assert.Equal(t, `%a\_b\\c%`, containsPattern(`a_b\c`))
}
