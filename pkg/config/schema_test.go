package config

import (
	"strings"
	"testing"

	"github.com/gonewx/greentrain/pkg/embedded"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "count"],
  "properties": {
    "name": { "type": "string" },
    "count": { "type": "integer", "minimum": 1 }
  }
}`

// TestValidateDocument 测试 YAML 文档的 JSON Schema 校验
func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"合法文档", "name: tren\ncount: 3\n", false},
		{"缺少字段", "name: tren\n", true},
		{"类型错误", "name: tren\ncount: tres\n", true},
		{"小于最小值", "name: tren\ncount: 0\n", true},
		{"小数不是整数", "name: tren\ncount: 2.5\n", true},
		{"大整数", "name: tren\ncount: 9007199254740993\n", false},
		{"YAML 语法错误", "name: [tren\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument("test.schema.json", []byte(testSchema), []byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCompileSchemaInvalid 非法 schema 应该编译失败
func TestCompileSchemaInvalid(t *testing.T) {
	if _, err := CompileSchema("broken.schema.json", []byte(`{"type": 12}`)); err == nil {
		t.Error("CompileSchema() should fail for an invalid schema")
	}
}

// TestEmbeddedSchemasAcceptShippedData 随程序发布的配置必须通过各自的 schema
func TestEmbeddedSchemasAcceptShippedData(t *testing.T) {
	docs := []struct {
		schema string
		doc    string
	}{
		{StationsSchemaPath, "data/stations.yaml"},
		{JourneySchemaPath, "data/journey.yaml"},
	}

	for _, d := range docs {
		t.Run(d.doc, func(t *testing.T) {
			data, err := embedded.ReadFile(d.doc)
			if err != nil {
				t.Fatalf("read %s: %v", d.doc, err)
			}
			if err := ValidateEmbeddedDocument(d.schema, data); err != nil {
				t.Errorf("%s does not match %s: %v", d.doc, d.schema, err)
			}
		})
	}
}

// TestValidateYAMLWithCompiledSchema 同一个已编译的 schema 可以反复校验多个文档
func TestValidateYAMLWithCompiledSchema(t *testing.T) {
	schema, err := CompileSchema("reuse.schema.json", []byte(testSchema))
	if err != nil {
		t.Fatalf("CompileSchema() failed: %v", err)
	}

	if err := ValidateYAML(schema, []byte("name: a\ncount: 1\n")); err != nil {
		t.Errorf("first document: %v", err)
	}
	if err := ValidateYAML(schema, []byte("name: b\ncount: -1\n")); err == nil {
		t.Error("second document should fail minimum")
	}
}

// TestStationsSchemaBuildingKind 建筑类型只能是 house 或 building
func TestStationsSchemaBuildingKind(t *testing.T) {
	data, err := embedded.ReadFile("data/stations.yaml")
	if err != nil {
		t.Fatalf("read stations: %v", err)
	}
	doc := string(data)
	if !strings.Contains(doc, "kind: building,") {
		t.Fatal("data/stations.yaml should contain a building")
	}

	old := strings.Replace(doc, "kind: building,", "kind: tower,", 1)
	if err := ValidateEmbeddedDocument(StationsSchemaPath, []byte(old)); err == nil {
		t.Error("schema should reject kind tower")
	}
}
