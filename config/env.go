package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadEnv overrides fields of cfg from environment variables named after
// the env struct tags, nested structs joined with "_":
// WAYPOINT_ROUTER_APP_DOWN sets Router.AppDown.
func loadEnv(cfg *Config, prefix string) error {
	return loadStructFromEnv(reflect.ValueOf(cfg).Elem(), prefix)
}

func loadStructFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		envName, _, _ := strings.Cut(fieldType.Tag.Get("env"), ",")
		if envName == "" {
			continue
		}

		fullEnvName := prefix + envName

		if field.Kind() == reflect.Struct {
			if err := loadStructFromEnv(field, fullEnvName+"_"); err != nil {
				return err
			}
			continue
		}

		envValue, ok := os.LookupEnv(fullEnvName)
		if !ok || envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("config: env %s: %w", fullEnvName, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}

		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
