package pkg

import (
	"bytes"
	"strconv"
)

// "indec" values are integers counting tenths: 23.4 is stored as 234.

func PrintIndec(i int64) string {
	return string(AppendIndec(nil, i))
}

func AppendIndec(dst []byte, i int64) []byte {
	if i < 0 {
		dst = append(dst, '-')
		i = -i
	}
	dst = strconv.AppendInt(dst, i/10, 10)
	return append(dst, '.', byte('0'+i%10))
}

// ParseIndec decodes [-]d.d or [-]dd.d. Anything else is rejected.
func ParseIndec(bs []byte) (int32, error) {
	var neg bool
	orig := bs
	if len(bs) > 0 && bs[0] == '-' {
		neg = true
		bs = bs[1:]
	}

	var result int32
	switch {
	case len(bs) == 3 && isDigit(bs[0]) && bs[1] == '.' && isDigit(bs[2]):
		result = int32(bs[0]-'0')*10 + int32(bs[2]-'0')
	case len(bs) == 4 && isDigit(bs[0]) && isDigit(bs[1]) && bs[2] == '.' && isDigit(bs[3]):
		result = int32(bs[0]-'0')*100 + int32(bs[1]-'0')*10 + int32(bs[3]-'0')
	default:
		return 0, newFormatError(orig, "value is not [-]d.d or [-]dd.d")
	}

	if neg {
		result = -result
	}
	return result, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func SplitParse(line []byte) (key []byte, val int32, err error) {
	semiColonIndex := bytes.IndexByte(line, ';')
	if semiColonIndex < 0 {
		return nil, 0, newFormatError(line, "missing ';'")
	}
	if semiColonIndex == 0 {
		return nil, 0, newFormatError(line, "empty key")
	}

	key = line[:semiColonIndex]
	val, err = ParseIndec(line[semiColonIndex+1:])
	if err != nil {
		// report the whole line, not just the value
		return nil, 0, newFormatError(line, err.(*FormatError).Reason)
	}
	return key, val, nil
}
