package params

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Value enumerates the types a parameter can be declared with: the
// primitive set, plus a few convenience types common in command line
// tools. The set is closed; conversion dispatches on the concrete
// pointer type of the bound storage.
type Value interface {
	bool | string |
		int | int64 | uint | uint64 |
		float32 | float64 |
		time.Duration | Bytes | net.IP | *net.TCPAddr | *url.URL
}

// convert parses text into the storage behind target. For *bool an
// empty text means bare presence and sets true.
func convert(target any, text string) error {
	switch p := target.(type) {
	case *bool:
		if text == "" {
			*p = true
			return nil
		}
		v, err := strconv.ParseBool(text)
		if err != nil {
			return conversionError(text, "bool", err)
		}
		*p = v
	case *string:
		*p = text
	case *int:
		v, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return conversionError(text, "int", err)
		}
		*p = int(v)
	case *int64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return conversionError(text, "int64", err)
		}
		*p = v
	case *uint:
		v, err := strconv.ParseUint(text, 10, strconv.IntSize)
		if err != nil {
			return conversionError(text, "uint", err)
		}
		*p = uint(v)
	case *uint64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return conversionError(text, "uint64", err)
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return conversionError(text, "float32", err)
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return conversionError(text, "float64", err)
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(text)
		if err != nil {
			return conversionError(text, "duration", err)
		}
		*p = v
	case *Bytes:
		if err := p.UnmarshalText([]byte(text)); err != nil {
			return conversionError(text, "bytes", err)
		}
	case *net.IP:
		v := net.ParseIP(text)
		if v == nil {
			return errors.Wrapf(ErrConversion, "cannot parse %q as an IP address", text)
		}
		*p = v
	case **net.TCPAddr:
		v, err := net.ResolveTCPAddr("tcp", text)
		if err != nil {
			return conversionError(text, "TCP address", err)
		}
		*p = v
	case **url.URL:
		v, err := url.Parse(text)
		if err != nil {
			return conversionError(text, "URL", err)
		}
		*p = v
	default:
		// Declarations go through the Value constraint, so this is
		// unreachable.
		panic(fmt.Sprintf("unhandled storage type %T", target))
	}
	return nil
}

func conversionError(text, as string, err error) error {
	return errors.Wrapf(ErrConversion, "cannot parse %q as %s: %v", text, as, err)
}

// Booleans are presence-only and never consume a value token.
func isBoolTarget(target any) bool {
	_, ok := target.(*bool)
	return ok
}

// A TCP address may legitimately be empty (a wildcard), so a value in
// a separate token is too easy to confuse with a following positional;
// the = form is required.
func needsExplicitValue(target any) bool {
	_, ok := target.(**net.TCPAddr)
	return ok
}
