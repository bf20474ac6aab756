package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makePage(offset uint64, size int) []string {
	page := make([]string, size)
	for i := range page {
		page[i] = fmt.Sprintf("ROW%06d", offset+uint64(i))
	}
	return page
}

func TestFetchAllPages(t *testing.T) {
	tests := []struct {
		name      string
		fetchPage func(limit, offset uint64) ([]string, error)
		validate  func(t *testing.T, records []string, err error)
	}{
		{
			name: "Página curta encerra a busca",
			fetchPage: func(limit, offset uint64) ([]string, error) {
				if offset == 0 {
					return makePage(offset, int(limit)), nil
				}
				return makePage(offset, 10), nil
			},
			validate: func(t *testing.T, records []string, err error) {
				assert.NoError(t, err)
				assert.Len(t, records, pageSize+10)
				assert.Equal(t, "ROW000000", records[0])
				assert.Equal(t, fmt.Sprintf("ROW%06d", pageSize+9), records[len(records)-1])
			},
		},
		{
			name: "Página vazia na primeira busca - resultado vazio sem erro",
			fetchPage: func(limit, offset uint64) ([]string, error) {
				return []string{}, nil
			},
			validate: func(t *testing.T, records []string, err error) {
				assert.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "Teto de linhas trunca a busca mesmo com páginas cheias",
			fetchPage: func(limit, offset uint64) ([]string, error) {
				// Sempre retorna página cheia: sem o teto a busca nunca terminaria
				return makePage(offset, int(limit)), nil
			},
			validate: func(t *testing.T, records []string, err error) {
				assert.NoError(t, err)
				assert.Len(t, records, maxFetchRows)
			},
		},
		{
			name: "Erro em qualquer página aborta a busca inteira",
			fetchPage: func(limit, offset uint64) ([]string, error) {
				if offset == pageSize {
					return nil, errors.New("connection reset")
				}
				return makePage(offset, int(limit)), nil
			},
			validate: func(t *testing.T, records []string, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := fetchAllPages(tt.fetchPage)
			tt.validate(t, records, err)
		})
	}
}

func TestBatchIDs(t *testing.T) {
	makeIDs := func(n int) []string {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("ID%04d", i)
		}
		return ids
	}

	tests := []struct {
		name     string
		ids      []string
		expected []int // tamanhos esperados de cada lote
	}{
		{
			name:     "Lista vazia - nenhum lote",
			ids:      []string{},
			expected: []int{},
		},
		{
			name:     "Menos que um lote - lote único",
			ids:      makeIDs(10),
			expected: []int{10},
		},
		{
			name:     "Exatamente um lote",
			ids:      makeIDs(idBatchSize),
			expected: []int{idBatchSize},
		},
		{
			name:     "Um id a mais que o lote - sobra vai para o segundo",
			ids:      makeIDs(idBatchSize + 1),
			expected: []int{idBatchSize, 1},
		},
		{
			name:     "Três lotes cheios",
			ids:      makeIDs(idBatchSize * 3),
			expected: []int{idBatchSize, idBatchSize, idBatchSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := batchIDs(tt.ids)

			assert.Len(t, batches, len(tt.expected))
			for i, size := range tt.expected {
				assert.Len(t, batches[i], size)
			}

			// A concatenação dos lotes preserva a ordem original
			flat := make([]string, 0, len(tt.ids))
			for _, batch := range batches {
				flat = append(flat, batch...)
			}
			assert.Equal(t, tt.ids, flat)
		})
	}
}
