package emit

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"log"
)

// Summary describes a completed Emit pass.
type Summary struct {
	Blocks  int       // blocks evaluated
	Support []float64 // support of each emitted block, in output order
}

func (s Summary) Emitted() int {
	return len(s.Support)
}

// SupportStats returns the mean and standard deviation of the support of emitted blocks.
func (s Summary) SupportStats() (mean, stdev float64) {
	switch len(s.Support) {
	case 0:
		return 0, 0
	case 1:
		return s.Support[0], 0
	}
	return stat.MeanStdDev(s.Support, nil)
}

func (s Summary) String() string {
	mean, stdev := s.SupportStats()
	return fmt.Sprintf("Emitted %d of %d blocks (support mean=%0.2f stdev=%0.2f).", s.Emitted(), s.Blocks, mean, stdev)
}

func (s Summary) histogram() (counts []float64, min int) {
	if len(s.Support) == 0 {
		return nil, 0
	}
	min, max := int(s.Support[0]), int(s.Support[0])
	for _, v := range s.Support {
		if int(v) < min {
			min = int(v)
		}
		if int(v) > max {
			max = int(v)
		}
	}
	counts = make([]float64, max-min+1)
	for _, v := range s.Support {
		counts[int(v)-min]++
	}
	return counts, min
}

// Plot draws the support histogram of emitted blocks for the terminal.
func (s Summary) Plot() string {
	counts, min := s.histogram()
	if len(counts) == 0 {
		return ""
	}
	if len(counts) == 1 {
		counts = append(counts, 0)
	}
	return asciigraph.Plot(counts, asciigraph.Height(10), asciigraph.Width(80), asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("blocks by support (starting at %d reads)", min)))
}

// PlotSupport saves a histogram of the support of emitted blocks to file. The image format
// is chosen from the file extension.
func PlotSupport(s Summary, file string) {
	if len(s.Support) == 0 {
		log.Printf("WARNING: no blocks emitted, skipping plot %s\n", file)
		return
	}
	p := plot.New()
	p.Title.Text = "Emitted blocks"
	p.X.Label.Text = "Reads per block"
	p.Y.Label.Text = "Blocks"

	h, err := plotter.NewHist(plotter.Values(s.Support), 50)
	exception.PanicOnErr(err)
	p.Add(h)

	err = p.Save(15*vg.Centimeter, 10*vg.Centimeter, file)
	exception.PanicOnErr(err)
}
