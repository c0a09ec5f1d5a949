package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("text", func(params ...any) (any, error) {
			switch v := params[0].(type) {
			case string:
				return v, nil
			case []any:
				parts := make([]string, len(v))
				for i, x := range v {
					parts[i] = fmt.Sprint(x)
				}
				return strings.Join(parts, ""), nil
			default:
				return fmt.Sprint(v), nil
			}
		},
			new(func(any) string)),
		expr.Function("blank", func(params ...any) (any, error) {
			switch v := params[0].(type) {
			case string:
				return strings.TrimSpace(v) == "", nil
			case []any:
				return len(v) == 0, nil
			default:
				return v == nil, nil
			}
		},
			new(func(any) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
