package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-consola/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los mensajes usan el nombre JSON del campo (codigo, categoria_id...), que es el que ve el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Validate aplica las reglas `validate` de s. Devuelve un *domain.ValidationError
// con un mensaje en español por campo, o nil si es válido.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Invalid(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.Invalid(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", f)
	case "email":
		return fmt.Sprintf("el campo %s debe ser un email válido", f)
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", f, fe.Param())
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor que %s", f, fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s debe ser al menos %s", f, fe.Param())
	case "max":
		return fmt.Sprintf("el campo %s no puede superar %s", f, fe.Param())
	case "datetime":
		return fmt.Sprintf("el campo %s debe tener el formato AAAA-MM-DD", f)
	case "eqfield":
		return fmt.Sprintf("el campo %s no coincide", f)
	case "nefield":
		return fmt.Sprintf("el campo %s debe ser distinto de la contraseña actual", f)
	default:
		return fmt.Sprintf("el campo %s no es válido", f)
	}
}
