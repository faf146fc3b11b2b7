package exportconfig

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Reporter receives print output from evaluated config files.  It is
// implemented by (*testing.T).Logf.
type Reporter func(format string, args ...interface{})

// LoadFile evaluates a starlark config file and extracts the export
// configuration from its globals:
//
//	framework_name = "MyCoolFramework"
//	support_generics = True
//	include = ["app/**"]
//	module_prefixes = {"third-party-http": "TPH"}
//
// Only framework_name is required.
func LoadFile(filename string, report Reporter) (*Config, error) {
	thread := &starlark.Thread{
		Name: "exportconfig",
		Print: func(_ *starlark.Thread, msg string) {
			report("%s", msg)
		},
	}
	globals, err := starlark.ExecFile(thread, filename, nil, starlark.StringDict{})
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return nil, fmt.Errorf("eval %s: %s", filename, evalErr.Backtrace())
		}
		return nil, err
	}
	return fromGlobals(globals)
}

func fromGlobals(globals starlark.StringDict) (*Config, error) {
	config := &Config{}

	name, err := stringGlobal(globals, "framework_name")
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, fmt.Errorf("framework_name must be set")
	}
	config.FrameworkName = name

	if value, ok := globals["support_generics"]; ok {
		b, ok := value.(starlark.Bool)
		if !ok {
			return nil, fmt.Errorf("support_generics: want bool, got %s", value.Type())
		}
		config.SupportGenerics = bool(b)
	}

	if value, ok := globals["include"]; ok {
		list, ok := value.(*starlark.List)
		if !ok {
			return nil, fmt.Errorf("include: want list, got %s", value.Type())
		}
		iter := list.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			s, ok := elem.(starlark.String)
			if !ok {
				return nil, fmt.Errorf("include: want string element, got %s", elem.Type())
			}
			config.Include = append(config.Include, string(s))
		}
	}

	if value, ok := globals["module_prefixes"]; ok {
		dict, ok := value.(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("module_prefixes: want dict, got %s", value.Type())
		}
		config.Prefixes = make(map[string]string, dict.Len())
		for _, item := range dict.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("module_prefixes: want string key, got %s", item[0].Type())
			}
			val, ok := item[1].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("module_prefixes[%s]: want string value, got %s", key, item[1].Type())
			}
			config.Prefixes[string(key)] = string(val)
		}
	}

	return config, nil
}

func stringGlobal(globals starlark.StringDict, name string) (string, error) {
	value, ok := globals[name]
	if !ok {
		return "", fmt.Errorf("%s must be set", name)
	}
	s, ok := value.(starlark.String)
	if !ok {
		return "", fmt.Errorf("%s: want string, got %s", name, value.Type())
	}
	return string(s), nil
}
