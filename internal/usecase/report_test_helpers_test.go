package usecase

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func plainReportOptions(t *testing.T) ReportOptions {
	t.Helper()

	opts := DefaultReportOptions()
	opts.Compress = false
	opts.AssetsDir = t.TempDir()
	opts.Now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return opts
}

func assertPDFContains(t *testing.T, content []byte, want ...string) {
	t.Helper()

	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		t.Fatalf("report is not a pdf")
	}
	body := string(content)
	for _, item := range want {
		if !strings.Contains(body, item) {
			t.Fatalf("expected %q in rendered report", item)
		}
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
