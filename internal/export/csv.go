package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/qviz/internal/curves"
)

// DecayCSV writes a decay series with an empty measured column where no
// experimental sample exists.
func DecayCSV(w io.Writer, samples []curves.DecaySample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "fit", "measured"}); err != nil {
		return err
	}
	for _, s := range samples {
		measured := ""
		if s.Sampled {
			measured = strconv.FormatFloat(s.Measured, 'f', 6, 64)
		}
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Fit, 'f', 6, 64),
			measured,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// RBCSV writes fitted points and scatter draws as tagged rows.
func RBCSV(w io.Writer, curve curves.RBCurve) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"length", "y", "kind", "mode"}); err != nil {
		return err
	}
	mode := curve.Mode.String()
	for _, p := range curve.Fit {
		row := []string{strconv.Itoa(p.Length), strconv.FormatFloat(p.Fit, 'f', 6, 64), "fit", mode}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	for _, p := range curve.Scatter {
		row := []string{strconv.Itoa(p.Length), strconv.FormatFloat(p.Y, 'f', 6, 64), "scatter", mode}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
