package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const DefaultBindingMessage = "올바르지 않은 요청입니다."

// fieldMessenger maps a request's wire field names to the message returned
// when that field fails to bind.
type fieldMessenger interface {
	fieldMessages() map[string]string
}

// BindingMessage picks the client message for an error from ShouldBindJSON
// or ShouldBindQuery on req.
func BindingMessage(err error, req fieldMessenger) string {
	messages := req.fieldMessages()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[wireName(req, verrs[0].StructField())]; ok {
			return msg
		}
		return DefaultBindingMessage
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg, ok := messages[typeErr.Field]; ok {
			return msg
		}
	}

	return DefaultBindingMessage
}

func wireName(req any, field string) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	for _, key := range []string{"json", "form"} {
		if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" {
			return name
		}
	}
	return field
}
