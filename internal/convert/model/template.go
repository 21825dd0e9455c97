package model

import (
	"strconv"
	"strings"

	"orderform-service/internal/tabular"
)

// Template is the output schema: the column list plus which columns the
// uploaded sample shows as numeric. Numeric columns get a best-effort
// numeric coercion in the post-pass (phone always excluded).
type Template struct {
	Columns []string
	Numeric map[string]bool
}

func DefaultTemplate() Template {
	return Template{Columns: TemplateColumns(), Numeric: map[string]bool{}}
}

// InferTemplate derives a Template from an uploaded sample workbook: a
// column counts as numeric when it has at least one non-empty cell and
// every non-empty cell parses as a number.
func InferTemplate(t *tabular.Table) Template {
	tpl := Template{Columns: append([]string(nil), t.Headers...), Numeric: map[string]bool{}}
	for c, h := range t.Headers {
		seen := false
		numeric := true
		for r := 0; r < t.Len(); r++ {
			v := strings.TrimSpace(t.Cell(r, c))
			if v == "" {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err != nil {
				numeric = false
				break
			}
		}
		if seen && numeric {
			tpl.Numeric[h] = true
		}
	}
	return tpl
}
