// Package model declares the canonical shipping template and the
// per-platform column mappings. The tables here are contracts with the
// external exporters: changing a letter or keyword changes which source
// column lands in which template field.
package model

type Platform string

const (
	Laora      Platform = "LAORA"      // 라오라 wholesale, letter-addressed via the saved mapping
	Coupang    Platform = "COUPANG"    // 쿠팡 marketplace, fixed letter mapping
	Smartstore Platform = "SMARTSTORE" // 스마트스토어 storefront, keyword-addressed
	Ttarimall  Platform = "TTARIMALL"  // 떠리몰 discount mall, keyword-addressed with the S/V rule
)

// Canonical template fields, in output column order.
const (
	FieldOrderNo = "주문번호"
	FieldName    = "받는분 이름"
	FieldAddr    = "받는분 주소"
	FieldPhone   = "받는분 전화번호"
	FieldProduct = "상품명"
	FieldQty     = "수량"
	FieldMemo    = "메모"
)

func TemplateColumns() []string {
	return []string{FieldOrderNo, FieldName, FieldAddr, FieldPhone, FieldProduct, FieldQty, FieldMemo}
}

// DefaultLaoraMapping — factory letter mapping for 라오라 exports; the
// operator can override and save it per session.
func DefaultLaoraMapping() map[string]string {
	return map[string]string{
		FieldOrderNo: "A",
		FieldName:    "I",
		FieldAddr:    "L",
		FieldPhone:   "J",
		FieldProduct: "D",
		FieldQty:     "G",
		FieldMemo:    "M",
	}
}

// CoupangMapping — fixed positional contract with the 쿠팡 exporter.
var CoupangMapping = map[string]string{
	FieldOrderNo: "C",
	FieldName:    "AA",
	FieldAddr:    "AD",
	FieldPhone:   "AB",
	FieldProduct: "P",
	FieldQty:     "W",
	FieldMemo:    "AE",
}

// Product-name roles for the two-column platforms.
const (
	RoleProductLeft  = "상품명_left"
	RoleProductRight = "상품명_right"
	RoleProductS     = "상품명_S"
	RoleProductV     = "상품명_V"
)

// SmartstoreKeywords — header candidates per field, most specific first.
// 상품명 is assembled from two source columns (left + right).
var SmartstoreKeywords = map[string][]string{
	FieldOrderNo:     {"주문번호"},
	FieldName:        {"수취인명"},
	FieldAddr:        {"통합배송지"},
	FieldPhone:       {"수취인연락처1", "수취인연락처", "수취인휴대폰", "연락처1"},
	RoleProductLeft:  {"상품명"},
	RoleProductRight: {"옵션정보", "옵션명", "옵션내용"},
	FieldQty:         {"수량", "구매수량"},
	FieldMemo:        {"배송메세지", "배송메시지", "배송요청사항"},
}

// TtarimallKeywords — 상품명 uses the S/V rule: equal columns collapse to V,
// different columns concatenate S+V.
var TtarimallKeywords = map[string][]string{
	FieldOrderNo: {"주문번호", "주문ID", "주문코드", "주문번호1"},
	FieldName:    {"수령자명", "받는분", "수취인명", "수령자"},
	FieldAddr:    {"주소", "수령자주소", "배송지주소", "통합배송지"},
	FieldPhone:   {"수령자연락처", "연락처", "휴대폰", "전화번호", "연락처1"},
	RoleProductS: {"상품명(S)", "상품명_S", "상품명S", "판매상품명", "상품명"},
	RoleProductV: {"옵션명:옵션값", "옵션", "옵션명", "옵션정보", "옵션내용", "옵션값", "상품옵션"},
	FieldQty:     {"수량", "구매수", "주문수량"},
	FieldMemo:    {"배송메시지", "배송메세지", "배송요청사항", "메모"},
}
