// Package progress renders console progress bars for generation and
// benchmark phases.
package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// ProgressBar wraps pb with the z-bench console theme.
type ProgressBar struct {
	*pb.ProgressBar
}

// NewProgressBar instantiates a started progress bar over total units.
func NewProgressBar(total int64) *ProgressBar {
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption shown ahead of the bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption+" ")
	return p
}
