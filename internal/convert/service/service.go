// Package service holds the pure per-platform transforms: source table in,
// canonical template table out. No I/O here; handlers own parsing and
// serialization.
package service

import (
	"strings"

	"orderform-service/internal/convert/model"
	"orderform-service/internal/excelcol"
	"orderform-service/internal/tabular"
)

// ScrubNaN maps the literal "nan" (any case) to "". The value shows up when
// an upstream tool stringifies an empty cell; it must never reach the
// shipping template, least of all in a phone column.
func ScrubNaN(s string) string {
	if strings.ToLower(s) == "nan" {
		return ""
	}
	return s
}

// ConvertLaora converts a 라오라 export through the operator-saved letter
// mapping. An empty mapping is a hard error, not a silent empty result.
func ConvertLaora(src *tabular.Table, letters map[string]string, tpl model.Template) (*tabular.Table, error) {
	if len(letters) == 0 {
		return nil, &model.MappingAbsentError{Platform: model.Laora}
	}
	return convertByLetters(src, letters, tpl)
}

// ConvertCoupang converts a 쿠팡 export through its fixed letter mapping.
func ConvertCoupang(src *tabular.Table, tpl model.Template) (*tabular.Table, error) {
	return convertByLetters(src, model.CoupangMapping, tpl)
}

func convertByLetters(src *tabular.Table, mapping map[string]string, tpl model.Template) (*tabular.Table, error) {
	out := newResult(tpl, src.Len())
	for _, field := range tpl.Columns {
		letters, ok := mapping[field]
		if !ok || letters == "" {
			continue
		}
		idx, err := excelcol.LetterToIndex(letters)
		if err != nil {
			return nil, err
		}
		if idx >= src.Width() {
			return nil, &model.OutOfRangeError{Letters: strings.ToUpper(strings.TrimSpace(letters)), Index: idx, Width: src.Width()}
		}
		fillField(out, columnIndex(tpl.Columns, field), field, src.Column(idx))
	}
	postNumericAlignment(out, tpl)
	return out, nil
}

// ConvertSmartstore converts a 스마트스토어 export via keyword-addressed
// headers. 상품명 is left+right concatenation, both sides nan-scrubbed.
func ConvertSmartstore(src *tabular.Table, tpl model.Template) (*tabular.Table, error) {
	cols, err := resolveKeywordColumns(model.SmartstoreKeywords, src.Headers)
	if err != nil {
		return nil, err
	}
	out := newResult(tpl, src.Len())
	copyKeywordFields(out, src, cols, tpl)

	if pc := columnIndex(tpl.Columns, model.FieldProduct); pc >= 0 {
		left := cols[model.RoleProductLeft]
		right := cols[model.RoleProductRight]
		for r := 0; r < src.Len(); r++ {
			l := ScrubNaN(src.Cell(r, left))
			rv := ScrubNaN(src.Cell(r, right))
			out.SetCell(r, pc, l+rv)
		}
	}
	postNumericAlignment(out, tpl)
	return out, nil
}

// ConvertTtarimall converts a 떠리몰 export. The S and V product columns are
// sometimes duplicate exports of the same label and sometimes complementary,
// so equal values collapse to V and different values concatenate S+V.
func ConvertTtarimall(src *tabular.Table, tpl model.Template) (*tabular.Table, error) {
	cols, err := resolveKeywordColumns(model.TtarimallKeywords, src.Headers)
	if err != nil {
		return nil, err
	}
	out := newResult(tpl, src.Len())
	copyKeywordFields(out, src, cols, tpl)

	if pc := columnIndex(tpl.Columns, model.FieldProduct); pc >= 0 {
		sCol := cols[model.RoleProductS]
		vCol := cols[model.RoleProductV]
		for r := 0; r < src.Len(); r++ {
			s := ScrubNaN(src.Cell(r, sCol))
			v := ScrubNaN(src.Cell(r, vCol))
			if s == v {
				out.SetCell(r, pc, v)
			} else {
				out.SetCell(r, pc, s+v)
			}
		}
	}
	postNumericAlignment(out, tpl)
	return out, nil
}

// resolveKeywordColumns resolves every role of a keyword map. Any miss
// aborts the whole transform; a half-populated table would be worse than an
// error the operator can act on.
func resolveKeywordColumns(keywords map[string][]string, headers []string) (map[string]int, error) {
	out := make(map[string]int, len(keywords))
	for role, cands := range keywords {
		idx, err := tabular.ResolveColumn(cands, headers)
		if err != nil {
			return nil, err
		}
		out[role] = idx
	}
	return out, nil
}

// copyKeywordFields fills the single-source canonical fields; product-name
// roles are handled by the per-platform callers.
func copyKeywordFields(out, src *tabular.Table, cols map[string]int, tpl model.Template) {
	for role, srcCol := range cols {
		switch role {
		case model.RoleProductLeft, model.RoleProductRight, model.RoleProductS, model.RoleProductV:
			continue
		}
		c := columnIndex(tpl.Columns, role)
		if c < 0 {
			continue
		}
		fillField(out, c, role, src.Column(srcCol))
	}
}

func newResult(tpl model.Template, rows int) *tabular.Table {
	out := tabular.New(append([]string(nil), tpl.Columns...))
	out.Rows = make([][]string, rows)
	for i := range out.Rows {
		out.Rows[i] = make([]string, len(tpl.Columns))
	}
	return out
}

func columnIndex(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

// fillField applies the per-field cell rule: quantity is coerced to a
// number (unparseable → empty, never an error), phone is nan-scrubbed to
// keep leading zeros intact, everything else copies verbatim.
func fillField(out *tabular.Table, col int, field string, values []string) {
	if col < 0 {
		return
	}
	for r, v := range values {
		switch field {
		case model.FieldQty:
			out.SetCell(r, col, formatNumericCell(v))
		case model.FieldPhone:
			out.SetCell(r, col, ScrubNaN(v))
		default:
			out.SetCell(r, col, v)
		}
	}
}

// postNumericAlignment re-coerces columns the template sample shows as
// numeric, phone excluded. Keeps the output consistent with an uploaded
// template's inferred schema.
func postNumericAlignment(out *tabular.Table, tpl model.Template) {
	for c, name := range out.Headers {
		if !tpl.Numeric[name] || name == model.FieldPhone {
			continue
		}
		for r := 0; r < out.Len(); r++ {
			out.SetCell(r, c, formatNumericCell(out.Cell(r, c)))
		}
	}
}

func formatNumericCell(v string) string {
	f, ok := ParseQuantity(v)
	if !ok {
		return ""
	}
	return FormatNumber(f)
}
