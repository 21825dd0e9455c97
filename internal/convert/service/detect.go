package service

import (
	"orderform-service/internal/convert/model"
	"orderform-service/internal/tabular"
)

// Detect classifies an unlabeled upload by its headers for unattended batch
// processing. The cascade is ordered most-specific-first: 떠리몰 and
// 스마트스토어 carry distinctive headers, 쿠팡 is recognizable by a few
// marketplace-only columns, and 라오라 — a free-form layout with nothing
// distinctive — is the fallback.
func Detect(src *tabular.Table) model.Platform {
	present := make(map[string]bool, len(src.Headers))
	for _, h := range src.Headers {
		present[tabular.NormalizeHeader(h)] = true
	}
	hasAny := func(keys ...string) bool {
		for _, k := range keys {
			if present[tabular.NormalizeHeader(k)] {
				return true
			}
		}
		return false
	}

	if hasAny("수령자명", "수령자연락처", "옵션명:옵션값") {
		return model.Ttarimall
	}
	if hasAny("수취인명", "수취인연락처1", "통합배송지") {
		return model.Smartstore
	}
	if hasAny("최초등록상품명") || (hasAny("구매수") && hasAny("옵션명")) || hasAny("배송메시지") {
		return model.Coupang
	}
	return model.Laora
}
