package csvstore

// columnMap resolves field values by column name so readers keep working
// against files whose column order was fixed by an earlier writer.
type columnMap map[string]int

func newColumnMap(header []string) columnMap {
	m := make(columnMap, len(header))
	for i, name := range header {
		m[name] = i
	}

	return m
}

func (m columnMap) get(row []string, field string) string {
	idx, ok := m[field]
	if !ok || idx >= len(row) {
		return ""
	}

	return row[idx]
}
