package marketing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de marketing
var (
	// Erros de validação
	ErrNameRequired       = errors.New("lead source name is required")
	ErrSourceIDRequired   = errors.New("lead source ID is required")
	ErrMonthRequired      = errors.New("spend month is required")
	ErrNegativeSpend      = errors.New("spend cannot be negative")
	ErrLeadSourceNotFound = errors.New("lead source not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("error generating UUID")
)

// MarketingError é um erro com contexto adicional para lead sources e spend
type MarketingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MarketingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *MarketingError) Unwrap() error {
	return e.Err
}

// NewMarketingError cria um novo MarketingError
func NewMarketingError(err error, code string, details string) *MarketingError {
	return &MarketingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
