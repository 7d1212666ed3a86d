package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rrspmax/bracketgen/internal/bracket"
	"github.com/rrspmax/bracketgen/internal/document"
	"github.com/rrspmax/bracketgen/internal/taxrate"
)

// JS renders the document as a JavaScript object literal ready to paste into
// the calculator's TAX_DATA table. The unbounded top bracket is emitted as
// the bare Infinity token, which is valid JavaScript even though it is not
// valid JSON.
func JS(doc *document.TaxDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n// Tax brackets for %d (generated by bracketgen)\n", doc.Year)
	b.WriteString("// Add this to the TAX_DATA object in script.js\n\n")

	fmt.Fprintf(&b, "%d: {\n", doc.Year)
	b.WriteString("  federal: [\n")
	for _, br := range doc.Federal {
		fmt.Fprintf(&b, "    %s,\n", jsBracket(br))
	}
	b.WriteString("  ],\n")

	b.WriteString("  provincial: {\n")
	for _, code := range taxrate.ProvincialCodes {
		prov, ok := doc.Provincial[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "    %s: {\n", code)
		fmt.Fprintf(&b, "      name: '%s',\n", prov.Name)
		b.WriteString("      brackets: [\n")
		for _, br := range prov.Brackets {
			fmt.Fprintf(&b, "        %s,\n", jsBracket(br))
		}
		b.WriteString("      ]\n")
		b.WriteString("    },\n")
	}
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

func jsBracket(br bracket.Bracket) string {
	return fmt.Sprintf("{ min: %s, max: %s, rate: %s }",
		jsNumber(br.Min), jsBound(br.Max), jsNumber(br.Rate))
}

func jsBound(bound taxrate.Bound) string {
	if bound.Infinite() {
		return "Infinity"
	}
	return jsNumber(bound.Amount())
}

// jsNumber formats without exponent notation so large dollar amounts stay
// readable (1128858, not 1.128858e+06).
func jsNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
