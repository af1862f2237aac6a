package histogram

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-openapi/swag"
	"github.com/juju/errors"
)

// DefaultScale is the number of matches one bar marker stands for.
const DefaultScale = 20

// DefaultMarker draws the bars.
const DefaultMarker = "#"

// BarColor is the foreground used when bars are styled.
var BarColor = lipgloss.Color("#874BFD")

// Renderer formats a counter table. Only populated indices are reported.
type Renderer struct {
	Ranges Ranges
	Scale  uint64
	Marker string
	// Style, when set, is applied to each bar.
	Style *lipgloss.Style
}

// NewRenderer returns a plain renderer for rs with the default scale and marker.
func NewRenderer(rs Ranges) *Renderer {
	return &Renderer{
		Ranges: rs,
		Scale:  DefaultScale,
		Marker: DefaultMarker,
	}
}

// WithColor styles bars with BarColor.
func (r *Renderer) WithColor() *Renderer {
	style := lipgloss.NewStyle().Foreground(BarColor)
	r.Style = &style
	return r
}

// BarLen is count/Scale rounded down.
func (r *Renderer) BarLen(count uint64) int {
	return int(count / r.Scale)
}

func (r *Renderer) validate() error {
	if r.Scale == 0 {
		return errors.NotValidf("scale 0")
	}
	return nil
}

func (r *Renderer) label(index int) string {
	if index < 0 || index >= len(r.Ranges) {
		return fmt.Sprintf("range %d", index)
	}
	return r.Ranges[index].String()
}

// Lines returns one report line per populated index, in index order.
func (r *Renderer) Lines(t *Table) ([]string, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	var lines []string
	t.Ascend(func(b Bucket) bool {
		bar := strings.Repeat(r.Marker, r.BarLen(b.Count))
		if r.Style != nil && bar != "" {
			bar = r.Style.Render(bar)
		}
		lines = append(lines, fmt.Sprintf("%s: %s - %d", r.label(b.Index), bar, b.Count))
		return true
	})
	return lines, nil
}

// Render writes Lines to w.
func (r *Renderer) Render(w io.Writer, t *Table) error {
	lines, err := r.Lines(t)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// ReportBucket is a populated range in a JSON report.
type ReportBucket struct {
	Index int    `json:"index"`
	Lower uint64 `json:"lower"`
	Upper uint64 `json:"upper"`
	Count uint64 `json:"count"`
	Bar   int    `json:"bar"`
}

// Report is the JSON form of a table.
type Report struct {
	Scale   uint64         `json:"scale"`
	Buckets []ReportBucket `json:"buckets"`
	Total   uint64         `json:"total"`
}

// Report builds the JSON form of t.
func (r *Renderer) Report(t *Table) (*Report, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	rep := &Report{Scale: r.Scale, Buckets: []ReportBucket{}}
	t.Ascend(func(b Bucket) bool {
		rb := ReportBucket{Index: b.Index, Count: b.Count, Bar: r.BarLen(b.Count)}
		if b.Index >= 0 && b.Index < len(r.Ranges) {
			rb.Lower = r.Ranges[b.Index].Lower
			rb.Upper = r.Ranges[b.Index].Upper
		}
		rep.Buckets = append(rep.Buckets, rb)
		rep.Total += b.Count
		return true
	})
	return rep, nil
}

// RenderJSON writes the Report for t to w followed by a newline.
func (r *Renderer) RenderJSON(w io.Writer, t *Table) error {
	rep, err := r.Report(t)
	if err != nil {
		return err
	}
	data, err := swag.WriteJSON(rep)
	if err != nil {
		return errors.Annotate(err, "encoding report")
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Trace(err)
	}
	return nil
}
