package app

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// TransKey gin.Context key of the validator translator set by the lang middleware
const TransKey = "trans"

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// BindAndValid 绑定请求参数并校验，校验错误按请求语言翻译
// An empty request body binds as an empty object so that required-field
// checks further down produce their own messages.
func BindAndValid(c *gin.Context, obj any, b binding.Binding) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBindWith(obj, b)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, io.EOF) {
		// 空请求体只做结构校验
		if err = binding.Validator.ValidateStruct(obj); err == nil {
			return true, nil
		}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
		return false, errs
	}

	trans, _ := c.Value(TransKey).(ut.Translator)
	for _, validationErr := range validationErrors {
		msg := validationErr.Error()
		if trans != nil {
			msg = validationErr.Translate(trans)
		}
		errs = append(errs, &ValidError{Key: validationErr.Field(), Message: msg})
	}
	return false, errs
}
