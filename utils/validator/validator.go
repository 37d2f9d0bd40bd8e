package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	// looser than the built-in "email" tag: something@something.something
	simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phone10Pattern     = regexp.MustCompile(`^[0-9]{10}$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("simpleemail", func(fl gpvalidator.FieldLevel) bool {
		return simpleEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl gpvalidator.FieldLevel) bool {
		return phone10Pattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FailedTags returns the failing tag per struct field name. Errors that are
// not validation errors yield nil.
func FailedTags(err error) map[string]string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil
	}
	res := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		res[fe.StructField()] = fe.Tag()
	}
	return res
}
