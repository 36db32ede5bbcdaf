package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// loadFromEnv overrides configuration fields from environment variables,
// using the `env` struct tag to locate the variable name.
func loadFromEnv(config *Config) error {
	return processStructFields(reflect.ValueOf(config).Elem())
}

// processStructFields walks struct fields recursively and applies env overrides
func processStructFields(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field); err != nil {
				return err
			}
			continue
		}

		envName := fieldType.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envName)
		if !exists || envValue == "" {
			continue
		}

		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(envValue)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			intValue, err := strconv.ParseInt(envValue, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value for %s: %w", envName, err)
			}
			field.SetInt(intValue)
		case reflect.Bool:
			boolValue, err := strconv.ParseBool(envValue)
			if err != nil {
				return fmt.Errorf("invalid boolean value for %s: %w", envName, err)
			}
			field.SetBool(boolValue)
		default:
			return fmt.Errorf("unsupported config field type %s for %s", field.Kind(), envName)
		}
	}

	return nil
}
