package executor

import "github.com/Adnangad/RDBMS/internal/catalog"

// project applies the statement's column list to the result set.
// `*` returns the rows as-is (with join prefixes if applicable). An
// explicit list is validated against the first row only; an empty result
// set passes vacuously.
func project(rows []catalog.Row, fields []string) ([]catalog.Row, error) {
	if len(fields) == 1 && fields[0] == "*" {
		return rows, nil
	}
	if len(rows) == 0 {
		return []catalog.Row{}, nil
	}

	for _, field := range fields {
		if _, ok := rows[0][field]; !ok {
			return nil, catalog.NewUnknownColumn(field)
		}
	}

	projected := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		pr := make(catalog.Row, len(fields))
		for _, field := range fields {
			if val, ok := row[field]; ok {
				pr[field] = val
			}
		}
		projected = append(projected, pr)
	}
	return projected, nil
}
