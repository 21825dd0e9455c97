// Package service reconciles a courier invoice (송장) file against
// per-platform order files. Each platform matches on a different key on
// purpose: 라오 order numbers carry an "LO" marker, 스마트스토어 numbers are
// 16 digits, 쿠팡 matches digits-only at fixed column positions, 떠리몰
// matches the exact string at a header-resolved column. Changing any one of
// these rules silently drops or misassigns tracking numbers.
package service

import (
	"errors"
	"regexp"
	"strings"

	convSvc "orderform-service/internal/convert/service"
	"orderform-service/internal/excelcol"
	"orderform-service/internal/tabular"
)

// Header candidates for the invoice file. Order matters: most specific first.
var (
	InvoiceOrderKeys = []string{"주문번호", "주문ID", "주문코드", "주문번호1"}
	TrackingKeys     = []string{"송장번호", "운송장번호", "운송장", "등기번호", "운송장 번호", "송장번호1"}

	SmartstoreOrderKeys = []string{"주문번호"}
	TtarimallOrderKeys  = []string{"주문번호", "주문ID", "주문코드", "주문번호1"}
)

const (
	SmartstoreTrackingCol = "송장번호"
	SmartstoreCarrierCol  = "택배사"
	SmartstoreCarrier     = "롯데택배"
	LaoCarrierCodeCol     = "택배사코드"
	LaoCarrierCode        = "08"
	CoupangTrackingCol    = "운송장 번호"
)

// Fixed positional contracts with the external exporters. Not configurable;
// if the exporter reorders columns these misbehave with no detection beyond
// the width check.
const (
	invoiceOrderLetterCP = "P" // invoice file: 쿠팡 order number
	coupangOrderLetter   = "C" // 쿠팡 order file: order number
	coupangTrackLetter   = "E" // 쿠팡 order file: tracking write target
)

var rxNonDigits = regexp.MustCompile(`\D+`)

// DigitsOnly normalizes an order id by discarding every non-digit rune.
func DigitsOnly(s string) string {
	return rxNonDigits.ReplaceAllString(s, "")
}

// TrackingMap is an order-id → tracking-id map that remembers first-seen key
// order so synthesized output sheets are deterministic. Duplicate keys keep
// the last value.
type TrackingMap struct {
	keys []string
	m    map[string]string
}

func NewTrackingMap() *TrackingMap {
	return &TrackingMap{m: make(map[string]string)}
}

func (t *TrackingMap) Set(k, v string) {
	if _, ok := t.m[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.m[k] = v
}

func (t *TrackingMap) Get(k string) (string, bool) {
	v, ok := t.m[k]
	return v, ok
}

func (t *TrackingMap) Len() int       { return len(t.m) }
func (t *TrackingMap) Keys() []string { return append([]string(nil), t.keys...) }

// BuildOrderTrackingMap extracts (order number → tracking number) from the
// invoice file via header keywords, keeping only rows where both sides are
// non-empty after nan-scrubbing.
func BuildOrderTrackingMap(inv *tabular.Table) (*TrackingMap, error) {
	orderCol, err := tabular.ResolveColumn(InvoiceOrderKeys, inv.Headers)
	if err != nil {
		return nil, err
	}
	trackCol, err := tabular.ResolveColumn(TrackingKeys, inv.Headers)
	if err != nil {
		return nil, err
	}
	out := NewTrackingMap()
	for r := 0; r < inv.Len(); r++ {
		o := convSvc.ScrubNaN(inv.Cell(r, orderCol))
		t := convSvc.ScrubNaN(inv.Cell(r, trackCol))
		if o != "" && t != "" {
			out.Set(o, t)
		}
	}
	return out, nil
}

// Classify splits the invoice map into the 라오 subset (order id contains
// "LO", case-insensitive) and the 스마트스토어 subset (digits-only form is
// exactly 16 digits). Everything else is left to the 쿠팡/떠리몰 paths.
func Classify(m *TrackingMap) (lao, ss *TrackingMap) {
	lao, ss = NewTrackingMap(), NewTrackingMap()
	for _, o := range m.Keys() {
		t, _ := m.Get(o)
		s := strings.TrimSpace(o)
		switch {
		case strings.Contains(strings.ToUpper(s), "LO"):
			lao.Set(s, t)
		case len(DigitsOnly(s)) == 16:
			ss.Set(s, t)
		}
	}
	return lao, ss
}

// LaoInvoice synthesizes the 라오 upload sheet from scratch: there is no
// pre-existing order file for this platform. Carrier code is fixed.
func LaoInvoice(lao *TrackingMap) *tabular.Table {
	out := tabular.New([]string{"주문번호", LaoCarrierCodeCol, "송장번호"})
	for _, o := range lao.Keys() {
		t, _ := lao.Get(o)
		out.Rows = append(out.Rows, []string{o, LaoCarrierCode, t})
	}
	return out
}

// FillSmartstore merges the 스마트스토어 subset into the order file. Cells
// that already hold a tracking number are left untouched, so re-running on
// an already-filled file changes nothing. Without an order file a bare
// two-column mapping sheet is synthesized.
func FillSmartstore(ss *TrackingMap, orders *tabular.Table) (*tabular.Table, error) {
	if orders == nil || orders.Len() == 0 {
		if ss.Len() == 0 {
			return tabular.New(nil), nil
		}
		out := tabular.New([]string{"주문번호", SmartstoreTrackingCol, SmartstoreCarrierCol})
		for _, o := range ss.Keys() {
			t, _ := ss.Get(o)
			out.Rows = append(out.Rows, []string{o, t, SmartstoreCarrier})
		}
		return out, nil
	}

	orderCol, err := tabular.ResolveColumn(SmartstoreOrderKeys, orders.Headers)
	if err != nil {
		return nil, err
	}
	out := orders.Clone()
	trackCol := exactColumn(out, SmartstoreTrackingCol)
	if trackCol < 0 {
		trackCol = out.AddColumn(SmartstoreTrackingCol, "")
	}
	for r := 0; r < out.Len(); r++ {
		existing := convSvc.ScrubNaN(out.Cell(r, trackCol))
		if strings.TrimSpace(existing) != "" {
			continue
		}
		// unmatched rows get "" — this also scrubs a literal "nan" cell
		t, _ := ss.Get(out.Cell(r, orderCol))
		out.SetCell(r, trackCol, t)
	}

	carrierCol := exactColumn(out, SmartstoreCarrierCol)
	if carrierCol < 0 {
		carrierCol = out.AddColumn(SmartstoreCarrierCol, SmartstoreCarrier)
	} else {
		for r := 0; r < out.Len(); r++ {
			v := convSvc.ScrubNaN(out.Cell(r, carrierCol))
			if strings.TrimSpace(v) == "" {
				out.SetCell(r, carrierCol, SmartstoreCarrier)
			}
		}
	}
	return out, nil
}

// BuildInvoiceMapFromP reads 쿠팡 order numbers from the invoice file's
// fixed P column and keys the map by their digits-only form; the exporter
// decorates these ids with formatting noise that must not affect matching.
// Duplicate digit keys keep the last row.
func BuildInvoiceMapFromP(inv *tabular.Table) (*TrackingMap, error) {
	pIdx, _ := excelcol.LetterToIndex(invoiceOrderLetterCP)
	if pIdx >= inv.Width() {
		return nil, errors.New("송장파일에 P열(주문번호)이 없습니다; 송장파일 양식을 확인해 주세요")
	}
	trackCol, err := tabular.ResolveColumn(TrackingKeys, inv.Headers)
	if err != nil {
		return nil, err
	}
	out := NewTrackingMap()
	for r := 0; r < inv.Len(); r++ {
		key := DigitsOnly(convSvc.ScrubNaN(inv.Cell(r, pIdx)))
		t := convSvc.ScrubNaN(inv.Cell(r, trackCol))
		if key != "" && t != "" {
			out.Set(key, t)
		}
	}
	return out, nil
}

// FillCoupang merges tracking numbers into the 쿠팡 order file by fixed
// positions: order id at column C, write target at column E. Matching is
// digits-only and the write is unconditional — the exporter re-issues the
// file with stale tracking values that must be overwritten.
func FillCoupang(inv, orders *tabular.Table) (*tabular.Table, error) {
	if orders == nil || orders.Len() == 0 {
		return tabular.New(nil), nil
	}
	if inv == nil || inv.Len() == 0 {
		return orders.Clone(), nil
	}

	invMap, err := BuildInvoiceMapFromP(inv)
	if err != nil {
		return nil, err
	}

	cIdx, _ := excelcol.LetterToIndex(coupangOrderLetter)
	if cIdx >= orders.Width() {
		return nil, errors.New("쿠팡 주문 파일에 C열(주문번호)이 없습니다; 쿠팡 주문파일 양식을 확인해 주세요")
	}
	out := orders.Clone()
	eIdx, _ := excelcol.LetterToIndex(coupangTrackLetter)
	if eIdx >= out.Width() {
		eIdx = exactColumn(out, CoupangTrackingCol)
		if eIdx < 0 {
			eIdx = out.AddColumn(CoupangTrackingCol, "")
		}
	}
	for r := 0; r < out.Len(); r++ {
		key := DigitsOnly(out.Cell(r, cIdx))
		if t, ok := invMap.Get(key); ok && t != "" {
			out.SetCell(r, eIdx, t)
		}
	}
	return out, nil
}

// FillTtarimall merges the full invoice map into the 떠리몰 order file.
// The order column is header-resolved, the tracking column is the first
// exact header among TrackingKeys (created as 송장번호 when absent), and the
// match is the exact order-id string.
func FillTtarimall(m *TrackingMap, orders *tabular.Table) (*tabular.Table, error) {
	if orders == nil || orders.Len() == 0 {
		return tabular.New(nil), nil
	}
	orderCol, err := tabular.ResolveColumn(TtarimallOrderKeys, orders.Headers)
	if err != nil {
		return nil, err
	}
	out := orders.Clone()
	trackCol := -1
	for _, name := range TrackingKeys {
		if c := exactColumn(out, name); c >= 0 {
			trackCol = c
			break
		}
	}
	if trackCol < 0 {
		trackCol = out.AddColumn("송장번호", "")
	}
	for r := 0; r < out.Len(); r++ {
		if t, ok := m.Get(out.Cell(r, orderCol)); ok && t != "" {
			out.SetCell(r, trackCol, t)
		}
	}
	return out, nil
}

func exactColumn(t *tabular.Table, name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
