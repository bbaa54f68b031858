package pkg

import (
	"io"
)

type FormatOptions struct {
	// Braces wraps the summary in '{' and '}'.
	Braces bool
}

// AppendSummary renders totals as `name=min/mean/max,` entries in ascending
// byte order of name, followed by a newline.
func AppendSummary(dst []byte, totals *Totals, opts FormatOptions) []byte {
	if opts.Braces {
		dst = append(dst, '{')
	}
	totals.Ascend(func(key []byte, v *StationStat) {
		dst = append(dst, key...)
		dst = append(dst, '=')
		dst = AppendIndec(dst, int64(v.Min))
		dst = append(dst, '/')
		dst = AppendIndec(dst, v.Mean())
		dst = append(dst, '/')
		dst = AppendIndec(dst, int64(v.Max))
		dst = append(dst, ',')
	})
	if opts.Braces {
		dst = append(dst, '}')
	}
	return append(dst, '\n')
}

func WriteSummary(w io.Writer, totals *Totals, opts FormatOptions) error {
	_, err := w.Write(AppendSummary(make([]byte, 0, 64*totals.Len()+3), totals, opts))
	return err
}
