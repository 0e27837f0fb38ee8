package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/Sahindou/ifrit-ticket/internal/domain/ticket"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator and
// makes field errors report JSON names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
			return ticket.ValidDueDate(fl.Field().String())
		})
	})
}

// ValidationMessages turns binding errors into per-field friendly messages.
// ok is false when err is not a validation failure (malformed JSON, wrong types).
func ValidationMessages(err error) (fields map[string]string, ok bool) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return nil, false
	}

	fields = make(map[string]string, len(verr))
	for _, fe := range verr {
		lbl := fe.Field()

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "notblank":
			msg = fmt.Sprintf("%s must not be blank", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		case "uuid":
			msg = fmt.Sprintf("%s must be a valid UUID", lbl)
		case "duedate":
			msg = fmt.Sprintf("%s must be a valid date in DD-MM-YYYY format", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		fields[lbl] = msg
	}
	return fields, true
}

// JoinMessages renders field messages in a stable order, separated by "; ".
func JoinMessages(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return strings.Join(msgs, "; ")
}
