package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/greentrain/pkg/embedded"
)

// JSON Schema 文件路径（嵌入资源）
const (
	StationsSchemaPath = "data/schemas/stations.schema.json"
	JourneySchemaPath  = "data/schemas/journey.schema.json"
)

// schemaBaseURL 编译 schema 时使用的资源 URL 前缀
// 只用作编译器内部的资源标识，不会发起网络请求
const schemaBaseURL = "https://greentrain.gonewx.dev/schemas/"

// CompileSchema 编译 JSON Schema
//
// 参数：
//   - name: schema 名称（如 "stations.schema.json"），用于生成资源 URL
//   - schemaData: schema 文件内容
func CompileSchema(name string, schemaData []byte) (*jsonschema.Schema, error) {
	url := schemaBaseURL + name

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(url, bytes.NewReader(schemaData)); err != nil {
		return nil, fmt.Errorf("failed to add schema %s: %w", name, err)
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return schema, nil
}

// ValidateYAML 使用已编译的 schema 校验 YAML 文档
// YAML 先转换为 JSON 值（数字保持 json.Number），再交给 jsonschema 校验
func ValidateYAML(schema *jsonschema.Schema, doc []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("failed to decode JSON value: %w", err)
	}

	return schema.Validate(value)
}

// ValidateDocument 编译 schema 并校验 YAML 文档
func ValidateDocument(schemaName string, schemaData, doc []byte) error {
	schema, err := CompileSchema(schemaName, schemaData)
	if err != nil {
		return err
	}
	return ValidateYAML(schema, doc)
}

// ValidateEmbeddedDocument 从嵌入资源读取 schema 并校验 YAML 文档
func ValidateEmbeddedDocument(schemaPath string, doc []byte) error {
	schemaData, err := embedded.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}
	return ValidateDocument(path.Base(schemaPath), schemaData, doc)
}
