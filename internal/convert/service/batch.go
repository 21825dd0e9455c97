package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"orderform-service/internal/convert/model"
	"orderform-service/internal/fileio"
	"orderform-service/internal/tabular"
)

type BatchInput struct {
	Name string
	Data io.Reader
}

type BatchItem struct {
	InputName  string
	OutputName string
	Platform   model.Platform
	Table      *tabular.Table
}

// Batch auto-detects and converts each file in turn. One file's failure is
// recorded in the log and does not stop the rest.
func Batch(inputs []BatchInput, laoraMapping map[string]string, tpl model.Template, logger zerolog.Logger) ([]BatchItem, []string) {
	var (
		items []BatchItem
		logs  []string
	)
	for _, in := range inputs {
		src, err := fileio.ReadAny(in.Data, in.Name)
		if err != nil {
			logs = append(logs, fmt.Sprintf("[FAIL] %s: 파일 읽기 오류 - %v", in.Name, err))
			logger.Warn().Str("file", in.Name).Err(err).Msg("batch: read failed")
			continue
		}

		platform := Detect(src)
		out, err := convertFor(platform, src, laoraMapping, tpl)
		if err != nil {
			logs = append(logs, fmt.Sprintf("[FAIL] %s: %s 처리 중 오류 - %v", in.Name, platform, err))
			logger.Warn().Str("file", in.Name).Str("platform", string(platform)).Err(err).Msg("batch: convert failed")
			continue
		}

		base := in.Name
		if i := strings.LastIndex(base, "."); i > 0 {
			base = base[:i]
		}
		outName := fmt.Sprintf("%s__%s_converted.xlsx", base, strings.ToLower(string(platform)))
		items = append(items, BatchItem{InputName: in.Name, OutputName: outName, Platform: platform, Table: out})
		logs = append(logs, fmt.Sprintf("[OK]   %s: %s → rows=%d → %s", in.Name, platform, out.Len(), outName))
		logger.Info().Str("file", in.Name).Str("platform", string(platform)).Int("rows", out.Len()).Msg("batch: converted")
	}
	return items, logs
}

func convertFor(p model.Platform, src *tabular.Table, laoraMapping map[string]string, tpl model.Template) (*tabular.Table, error) {
	switch p {
	case model.Ttarimall:
		return ConvertTtarimall(src, tpl)
	case model.Smartstore:
		return ConvertSmartstore(src, tpl)
	case model.Coupang:
		return ConvertCoupang(src, tpl)
	default:
		return ConvertLaora(src, laoraMapping, tpl)
	}
}
