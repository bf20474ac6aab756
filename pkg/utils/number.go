package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide numerator por denominator retornando nil quando o
// denominador é zero. Nunca produz NaN ou Inf.
func SafeRatio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}

	ratio := RoundWithTwoDecimalPlace(numerator / denominator)
	return &ratio
}

// SafeRatioCents divide centavos por uma contagem retornando nil quando a
// contagem é zero (ex: custo por venda sem vendas)
func SafeRatioCents(cents int64, count int) *int64 {
	if count == 0 {
		return nil
	}

	result := cents / int64(count)
	return &result
}

// Percentage calcula part/total*100 com a convenção de zero: denominador
// zero resulta em 0, não em nil. As taxas do funil usam essa convenção,
// diferente do ROI e do custo por venda, que usam nil.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(part) / float64(total) * 100)
}

// ApplyRate aplica um percentual sobre um valor em centavos, arredondando
// para o centavo mais próximo
func ApplyRate(cents int64, ratePercent float64) int64 {
	return int64(math.Round(float64(cents) * ratePercent / 100))
}

// CentsToAmount converte centavos para o valor monetário em unidades
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
