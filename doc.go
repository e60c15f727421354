// Package guidefmt reformats Guide markup documents into a canonical,
// line-wrapped rendition.
//
// A document is read line by line, split into its preamble and a sequence
// of named nodes, and every non-literal body line is re-wrapped so that its
// rendered width (what a viewer sees, with markup collapsed to its display
// text) never exceeds a fixed column width. Markup is preserved verbatim;
// only the wrap points change. Missing prev/next/toc/index navigation
// links are back-filled from document order before the result is written.
//
// Core properties:
//   - Wrap decisions use rendered width; emitted lines keep source markup
//   - Literal lines (indented text, spaced tables, structural commands)
//     pass through byte for byte
//   - Formatting the formatter's own output again is a byte-identical no-op
//
// Example:
//
//	reader := strings.NewReader("@database example\n@node main\nSome text.\n")
//	err := guidefmt.Format(guidefmt.FormatRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package guidefmt
