// Package export serializes trajectories and chart series for use outside
// the terminal: SVG pulse scenes and CSV data dumps.
package export
