package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

const keySep = "\x1f"

// Key identifies a cached result: the resource name followed by every
// parameter that changes the answer.
type Key struct {
	parts []string
}

func NewKey(resource string, params ...interface{}) Key {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, resource)
	for _, p := range params {
		parts = append(parts, formatParam(p))
	}
	return Key{parts: parts}
}

func formatParam(p interface{}) string {
	switch v := p.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	case fmt.Stringer:
		return v.String()
	default:
		b, err := sonic.ConfigStd.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

func (k Key) Resource() string {
	if len(k.parts) == 0 {
		return ""
	}
	return k.parts[0]
}

// HasPrefix reports whether every part of p matches the leading parts of k.
func (k Key) HasPrefix(p Key) bool {
	if len(p.parts) > len(k.parts) {
		return false
	}
	for i := range p.parts {
		if k.parts[i] != p.parts[i] {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	return strings.Join(k.parts, "/")
}

func (k Key) id() string {
	return strings.Join(k.parts, keySep)
}
