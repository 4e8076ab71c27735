package tempo

import (
	"math"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Report generates and prints a table containing the statistics of all
// timers created by the manager, in name order.
func (m *TimerManager) Report() {
	w := getOutput()
	headerFmt := color.New(color.FgYellow, color.Underline).SprintfFunc()

	tbl := table.New(
		"timer",
		"last runtime",
		"mean runtime",
		"std runtime",
		"fps",
		"nsamples",
	)
	tbl.WithHeaderFormatter(headerFmt)
	tbl.WithWriter(w)

	for _, name := range m.Names() {
		t, _ := m.GetTimer(name)

		t.mu.Lock()
		last := t.lastElapsed
		mean, _ := t.stats.mean()
		std, _ := t.stats.std()
		rate := t.stats.rate()
		nsamples := t.stats.nsamples
		t.mu.Unlock()

		tbl.AddRow(name,
			last,
			secondsToDuration(mean),
			secondsToDuration(std),
			math.Floor(rate*100)/100,
			nsamples)
	}

	color.New(color.FgYellow).Add(color.Bold).Fprintf(w, "\nⓉ Timers\n")
	tbl.Print()
}
