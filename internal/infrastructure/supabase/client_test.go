package supabase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Os matchers enxergam o RequestError mesmo embrulhado por fmt.Errorf.
func TestRequestErrorMatchers_Embrulhado(t *testing.T) {
	dup := fmt.Errorf("insert customers: %w",
		&RequestError{Status: 409, Code: "23505", Message: "duplicate key value"})
	badID := fmt.Errorf("get product: %w",
		&RequestError{Status: 400, Code: "22P02", Message: "invalid input syntax for type uuid"})

	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsInvalidID(dup))

	assert.True(t, IsInvalidID(badID))
	assert.False(t, IsUniqueViolation(badID))
}

// Erros de outra natureza não casam com nenhum matcher.
func TestRequestErrorMatchers_OutroErro(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsUniqueViolation(err))
	assert.False(t, IsInvalidID(err))
}
