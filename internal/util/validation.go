package util

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessages 将 validator 错误转为 字段 -> 规则 的映射，其他错误返回 nil
func ValidationMessages(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	messages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		messages[lowerFirst(e.Field())] = e.Tag()
	}
	return messages
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
