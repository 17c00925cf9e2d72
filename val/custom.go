package val

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // compiled once
var sortExprRe = regexp.MustCompile(`^\s*[a-z_]+\s*:\s*(?i:asc|desc)\s*(,\s*[a-z_]+\s*:\s*(?i:asc|desc)\s*)*$`)

// IsSortExpr reports whether s is a "field:dir[,field:dir...]" sort expression.
func IsSortExpr(s string) bool {
	return sortExprRe.MatchString(s)
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("sort_expr", func(fl validator.FieldLevel) bool {
		return IsSortExpr(fl.Field().String())
	})
}
