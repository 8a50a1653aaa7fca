package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Only the subset of the schema used by the config is checked: section presence, minimums and enums.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema jsonschema.Schema
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root := resolve(&schema, &schema)
	if root == nil || root.Properties == nil {
		return fmt.Errorf("embedded schema has no config properties")
	}
	for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
		section, ok := configMap[pair.Key].(map[string]any)
		if !ok {
			return fmt.Errorf("section %s is missing", pair.Key)
		}
		if err := verifySection(&schema, pair.Key, resolve(&schema, pair.Value), section); err != nil {
			return err
		}
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func verifySection(root *jsonschema.Schema, name string, s *jsonschema.Schema, values map[string]any) error {
	if s == nil || s.Properties == nil {
		return nil
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		prop := resolve(root, pair.Value)
		val, ok := values[pair.Key]
		if !ok || prop == nil {
			continue
		}
		if num, isNum := val.(float64); isNum && prop.Minimum != "" {
			if minVal, err := prop.Minimum.Float64(); err == nil && num < minVal {
				return fmt.Errorf("%s.%s is %v, minimum is %v", name, pair.Key, num, minVal)
			}
		}
		if str, isStr := val.(string); isStr && len(prop.Enum) > 0 {
			found := false
			for _, e := range prop.Enum {
				if e == str {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%s.%s value %q is not allowed", name, pair.Key, str)
			}
		}
	}
	return nil
}

// resolve follows a local $ref of the schema
func resolve(root, s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	const prefix = "#/$defs/"
	if len(s.Ref) <= len(prefix) || s.Ref[:len(prefix)] != prefix {
		return s
	}
	return root.Definitions[s.Ref[len(prefix):]]
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Proxy.Enabled && cfg.Proxy.URL == "" {
		return fmt.Errorf("proxy.url is required when proxy is enabled")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
