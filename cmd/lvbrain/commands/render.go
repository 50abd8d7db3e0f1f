// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/lvbrain/config"
	"github.com/katalvlaran/lvbrain/summary"
)

// render writes info in the configured format. Tables get a header line
// with title; encoded formats carry the data only.
func (a *app) render(w io.Writer, title string, info summary.Info) error {
	format := a.settings.Output.Format
	if strings.EqualFold(format, config.FormatTable) {
		return renderTable(w, title, info)
	}
	f, err := summary.ParseFormat(format)
	if err != nil {
		return err
	}

	return info.Encode(w, f)
}

func renderTable(w io.Writer, title string, info summary.Info) error {
	data := pterm.TableData{{"Key", "Value"}}
	for _, k := range info.Keys() {
		data = append(data, []string{k, humanValue(info[k])})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", pterm.DefaultSection.Sprint(title), table)

	return err
}

// humanValue formats counts with thousands separators and trims floats.
func humanValue(v any) string {
	switch x := v.(type) {
	case int:
		return humanize.Comma(int64(x))
	case int64:
		return humanize.Comma(x)
	case float64:
		return humanize.FtoaWithDigits(x, 8)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case string:
		if x == "" {
			return "-"
		}
		return x
	default:
		return fmt.Sprint(v)
	}
}
