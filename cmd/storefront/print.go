package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are whole dong; the printer adds thousands separators.
var priceFmt = message.NewPrinter(language.English)

// table returns a tabwriter on a.out, with the header row already written
// when headers are given.
func (a *app) table(headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if len(headers) > 0 {
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
	}
	return tw
}

func money(v float64) string {
	return priceFmt.Sprintf("%.0f VND", v)
}
