package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se um erro é violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isInvalidUUID verifica se um erro é de texto que não casta para a coluna
// uuid (22P02); nas leituras equivale a linha inexistente.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22P02" // invalid_text_representation
	}
	return strings.Contains(err.Error(), "22P02")
}

// nullif devolve nil para string vazia, preservando NULL nas colunas
// opcionais (os índices únicos parciais ignoram NULL, não string vazia).
func nullif(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strval desreferencia com "" como default.
func strval(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
