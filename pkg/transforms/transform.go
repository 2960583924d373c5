package transforms

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/gtfs-builder/pkg/gtfs"
)

// TransformDefinition overrides fields of a route when every Match field equals the given text
// and the optional When expression evaluates to true
type TransformDefinition struct {
	Match map[string]string      `yaml:"match"`
	When  string                 `yaml:"when"`
	Data  map[string]interface{} `yaml:"data"`

	program *vm.Program
}

func (t *TransformDefinition) compile() error {
	routeType := reflect.TypeOf(gtfs.Route{})

	for key := range t.Match {
		if _, exists := routeType.FieldByName(key); !exists {
			return fmt.Errorf("match field %s does not exist on a route", key)
		}
	}
	for key := range t.Data {
		if _, exists := routeType.FieldByName(key); !exists {
			return fmt.Errorf("data field %s does not exist on a route", key)
		}
	}

	if t.When == "" {
		return nil
	}

	program, err := expr.Compile(t.When, expr.Env(gtfs.Route{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compiling %q: %w", t.When, err)
	}
	t.program = program

	return nil
}

func (t *TransformDefinition) matches(route *gtfs.Route) (bool, error) {
	inputValue := reflect.ValueOf(route).Elem()

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || fmt.Sprint(field.Interface()) != value {
			return false, nil
		}
	}

	if t.program == nil {
		return true, nil
	}

	result, err := expr.Run(t.program, *route)
	if err != nil {
		return false, err
	}

	return result.(bool), nil
}

// Transform applies the definition to the route, returning whether it matched
func (t *TransformDefinition) Transform(route *gtfs.Route) (bool, error) {
	isMatch, err := t.matches(route)
	if err != nil || !isMatch {
		return false, err
	}

	inputValue := reflect.ValueOf(route).Elem()
	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if err := setField(field, value); err != nil {
			return true, fmt.Errorf("setting %s: %w", key, err)
		}
	}

	return true, nil
}

func setField(field reflect.Value, value interface{}) error {
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	newValue := reflect.ValueOf(value)
	if !newValue.IsValid() {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	if newValue.Type().AssignableTo(field.Type()) {
		field.Set(newValue)
		return nil
	}

	if isNumeric(newValue.Kind()) && isNumeric(field.Kind()) {
		field.Set(newValue.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot use %v (%T) as %s", value, value, field.Type())
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
