package request

import (
	"sync"

	"library-service/internal/domain/checkable"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the catalogue tags to gin's binding validator.
// Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("checkable_kind", validateKind); err != nil {
			return
		}
		err = v.RegisterValidation("media_type", validateMediaType)
	})
	return err
}

func validateKind(fl validator.FieldLevel) bool {
	_, err := checkable.ParseKind(fl.Field().String())
	return err == nil
}

func validateMediaType(fl validator.FieldLevel) bool {
	_, err := checkable.ParseMediaType(fl.Field().String())
	return err == nil
}
