package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"time"
)

// Zip accumulates download entries for batch responses.
type Zip struct {
	buf bytes.Buffer
	w   *zip.Writer
}

func NewZip() *Zip {
	z := &Zip{}
	z.w = zip.NewWriter(&z.buf)
	return z
}

func (z *Zip) Add(name string, data []byte) error {
	f, err := z.w.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

func (z *Zip) Close() ([]byte, error) {
	if err := z.w.Close(); err != nil {
		return nil, err
	}
	return z.buf.Bytes(), nil
}

// BatchLog renders the per-file processing log shipped inside the archive.
func BatchLog(lines []string, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("Batch Convert Log - ")
	b.WriteString(now.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	return []byte(b.String())
}
