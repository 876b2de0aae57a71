// Package validator wraps go-playground/validator with the tags and error
// format used across blockrelay.
//
// Field names in error messages follow the struct's yaml tags, so a failure
// points at the configuration key the operator has to fix, e.g.
// 'destination.address'.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'source.ws_url': value 'http://x' does not meet the requirements for the 'ws_url' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(yamlTagName)

	mustRegister("ws_url", isWebsocketURL)
	mustRegister("secp256k1_key", isPrivateKey)
}

func mustRegister(tag string, fn gvalidator.Func) {
	if err := validator.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// yamlTagName names fields after their yaml key, falling back to the Go name.
func yamlTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// isWebsocketURL accepts ws:// and wss:// URLs.
func isWebsocketURL(fl gvalidator.FieldLevel) bool {
	v := strings.ToLower(fl.Field().String())
	return strings.HasPrefix(v, "ws://") || strings.HasPrefix(v, "wss://")
}

// isPrivateKey accepts a hex secp256k1 key with or without the 0x prefix.
func isPrivateKey(fl gvalidator.FieldLevel) bool {
	_, err := crypto.HexToECDSA(strings.TrimPrefix(fl.Field().String(), "0x"))
	return err == nil
}

// fieldPath drops the root struct name from a namespace such as
// "Config.source.http_url".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

// formatError turns validator errors into ErrValidationFailed joined with one
// message per failed field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		value := validationErr.Value()
		if validationErr.Tag() == "secp256k1_key" {
			value = "<redacted>"
		}

		errs = append(errs, fmt.Errorf(errStringFormat,
			fieldPath(validationErr.Namespace()),
			value,
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
