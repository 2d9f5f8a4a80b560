package usecase

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/marcador-reportes/internal/platform/pdfreport"
)

const (
	// Placeholder is shown for display fields the backend left empty.
	Placeholder = "–"
	// LogoPlaceholder replaces crests that could not be resolved.
	LogoPlaceholder = "Sin logo"
)

// Report is a rendered document ready to be served as an attachment.
type Report struct {
	Filename string
	Content  []byte
}

// ReportOptions carries the rendering knobs shared by every report service.
type ReportOptions struct {
	Attribution        string
	LeadersAttribution string
	Compress           bool
	AssetsDir          string
	LogoWorkers        int
	// Now stamps document metadata; nil means time.Now.
	Now func() time.Time
}

func DefaultReportOptions() ReportOptions {
	return ReportOptions{
		Attribution:        "Generado por MarcadorReportesPDF-Fase3",
		LeadersAttribution: "Generado por MarcadorReportesPDF",
		Compress:           true,
		AssetsDir:          "assets",
		LogoWorkers:        4,
	}
}

func (o ReportOptions) normalized() ReportOptions {
	def := DefaultReportOptions()
	if o.LeadersAttribution == "" {
		o.LeadersAttribution = def.LeadersAttribution
	}
	if o.AssetsDir == "" {
		o.AssetsDir = def.AssetsDir
	}
	if o.LogoWorkers < 1 {
		o.LogoWorkers = def.LogoWorkers
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o ReportOptions) document(page pdfreport.PageSize, title string) *pdfreport.Document {
	opts := pdfreport.DefaultOptions()
	opts.Page = page
	if page == pdfreport.PageLetter {
		opts.MarginBottom = 36
	}
	opts.Compress = o.Compress
	opts.Title = title
	opts.Creator = "marcador-reportes"
	opts.CreatedAt = o.Now()
	return pdfreport.New(opts)
}

// tableReport is the layout shared by every report except the leaderboard:
// title, attribution, optional subtitle and one table.
type tableReport struct {
	Title     string
	Subtitle  string
	Columns   []string
	Widths    []float64
	BodyAlign map[int]pdfreport.Align
	Rows      [][]pdfreport.Cell
}

func (o ReportOptions) renderTable(r tableReport) ([]byte, error) {
	doc := o.document(pdfreport.PageA4, r.Title)
	doc.Header(pdfreport.Header{
		Title:       r.Title,
		Attribution: o.Attribution,
		Subtitle:    r.Subtitle,
	})
	doc.Table(pdfreport.Table{
		Columns:   r.Columns,
		Widths:    r.Widths,
		BodyAlign: r.BodyAlign,
		Rows:      r.Rows,
		Style:     pdfreport.DefaultTableStyle(),
	})

	content, err := doc.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "render %q", r.Title)
	}
	return content, nil
}

func textRow(values ...string) []pdfreport.Cell {
	row := make([]pdfreport.Cell, 0, len(values))
	for _, v := range values {
		row = append(row, pdfreport.Text(v))
	}
	return row
}
