// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

const (
	// pageSize é o tamanho fixo de página das buscas paginadas
	pageSize = 500

	// maxFetchRows é o teto de segurança de linhas por busca completa.
	// Passar do teto trunca silenciosamente o resultado: é uma aproximação
	// aceita, não uma condição de erro.
	maxFetchRows = 20000

	// idBatchSize é o limite de ids por filtro IN imposto pela fonte de dados
	idBatchSize = 50
)

// fetchAllPages busca páginas de tamanho fixo até receber uma página curta ou
// atingir o teto de linhas, concatenando os resultados. Qualquer erro de página
// aborta a busca inteira e é repassado ao chamador: as agregações nunca rodam
// sobre um conjunto que sabem estar incompleto.
func fetchAllPages[T any](fetchPage func(limit, offset uint64) ([]T, error)) ([]T, error) {
	records := make([]T, 0, pageSize)

	for offset := uint64(0); ; offset += pageSize {
		page, err := fetchPage(pageSize, offset)
		if err != nil {
			return nil, err
		}

		records = append(records, page...)

		if len(page) < pageSize || len(records) >= maxFetchRows {
			break
		}
	}

	return records, nil
}

// batchIDs quebra uma lista de ids em lotes de idBatchSize para filtros IN
func batchIDs(ids []string) [][]string {
	batches := make([][]string, 0, (len(ids)+idBatchSize-1)/idBatchSize)

	for start := 0; start < len(ids); start += idBatchSize {
		end := start + idBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batches = append(batches, ids[start:end])
	}

	return batches
}
