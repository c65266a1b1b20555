package execution

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/testsuite"
)

// TestSuiteConfigurator turns the process inputs into a suite.
type TestSuiteConfigurator interface {
	// SetLogLevel applies the log level the orchestrator asked for.
	SetLogLevel(level string) error
	// ParseParamsAndCreateSuite builds the suite from the custom params JSON.
	ParseParamsAndCreateSuite(paramsJSON string) (testsuite.TestSuite, error)
}

// ParamsSchemaProvider is implemented by configurators whose custom params
// must match a JSON Schema.
type ParamsSchemaProvider interface {
	ParamsSchema() string
}

const paramsSchemaURL = "testnet://params.schema.json"

// ValidateParams checks that paramsJSON is a JSON document and, when
// configurator provides a schema, that it matches the schema.
func ValidateParams(configurator TestSuiteConfigurator, paramsJSON string) error {
	dec := json.NewDecoder(strings.NewReader(paramsJSON))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return &domain.ConfigurationError{Field: "custom params", Reason: "not valid JSON", Cause: err}
	}
	if dec.More() {
		return &domain.ConfigurationError{Field: "custom params", Reason: "trailing data after JSON document"}
	}

	provider, ok := configurator.(ParamsSchemaProvider)
	if !ok {
		return nil
	}

	schema, err := compileParamsSchema(provider.ParamsSchema())
	if err != nil {
		return &domain.ConfigurationError{Field: "params schema", Reason: "invalid schema", Cause: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &domain.ConfigurationError{Field: "custom params", Reason: "does not match schema", Cause: err}
	}
	return nil
}

func compileParamsSchema(raw string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(paramsSchemaURL, bytes.NewReader([]byte(raw))); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(paramsSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
