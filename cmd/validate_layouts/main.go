// validate_layouts 在游戏外校验内容配置
//
// 对每个 YAML 文件先做 JSON Schema 校验，再做与游戏启动时相同的语义校验，
// 最后检查站点实体之间是否在屏幕上重叠（只给出警告）。
//
// 用法：
//
//	go run ./cmd/validate_layouts [--root .] [--strict]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path"

	"github.com/gonewx/greentrain/pkg/config"
)

var (
	root   = flag.String("root", ".", "项目根目录（包含 data/）")
	strict = flag.Bool("strict", false, "把重叠警告视为错误")
)

// document 一个内容配置文件及其 schema 和语义解析器
type document struct {
	file   string
	schema string
	parse  func([]byte) error
}

func main() {
	flag.Parse()

	var stations *config.StationsConfig
	docs := []document{
		{
			file:   config.JourneyConfigPath,
			schema: config.JourneySchemaPath,
			parse: func(data []byte) error {
				_, err := config.ParseJourneyConfig(data)
				return err
			},
		},
		{
			file:   config.StationsConfigPath,
			schema: config.StationsSchemaPath,
			parse: func(data []byte) error {
				cfg, err := config.ParseStationsConfig(data)
				stations = cfg
				return err
			},
		},
	}

	failed := 0
	for _, d := range docs {
		if err := validate(d); err != nil {
			fmt.Printf("✗ %s\n    %v\n", d.file, err)
			failed++
			continue
		}
		fmt.Printf("✓ %s\n", d.file)
	}

	warnings := 0
	if stations != nil {
		for _, w := range overlaps(stations) {
			fmt.Printf("! %s\n", w)
			warnings++
		}
	}

	if failed > 0 || (*strict && warnings > 0) {
		fmt.Printf("\n%d 个文件校验失败, %d 个警告\n", failed, warnings)
		os.Exit(1)
	}
	fmt.Printf("\n全部通过 (%d 个警告)\n", warnings)
}

func validate(d document) error {
	data, err := os.ReadFile(path.Join(*root, d.file))
	if err != nil {
		return err
	}
	schemaData, err := os.ReadFile(path.Join(*root, d.schema))
	if err != nil {
		return err
	}
	if err := config.ValidateDocument(path.Base(d.schema), schemaData, data); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if err := d.parse(data); err != nil {
		return fmt.Errorf("semantic: %w", err)
	}
	return nil
}

// circle 屏幕上的圆形占位
type circle struct {
	name    string
	x, y, r float64
}

// overlaps 检查同一站点中可交互实体的占位是否重叠
func overlaps(cfg *config.StationsConfig) []string {
	var out []string

	var spots []circle
	for _, s := range cfg.Reforestation.Spots {
		x, y := config.PercentToScreen(s.X, s.Y)
		spots = append(spots, circle{fmt.Sprintf("reforestation spot %d", s.ID), x, y, config.SpotRadius})
	}
	for _, t := range cfg.Reforestation.Tools {
		x, y := config.PercentToScreen(t.X, t.Y)
		spots = append(spots, circle{"reforestation tool " + t.Kind, x, y, config.ToolChipSize / 2})
	}
	out = append(out, circleOverlaps(spots)...)

	var trash []circle
	for _, it := range cfg.River.Items {
		x, y := config.PercentToScreen(it.X, it.Y)
		trash = append(trash, circle{fmt.Sprintf("river item %d", it.ID), x, y, config.TrashRadius})
	}
	out = append(out, circleOverlaps(trash)...)

	var cages []circle
	for _, a := range cfg.Wildlife.Animals {
		x, y := config.PercentToScreen(a.X, a.Y)
		cages = append(cages, circle{fmt.Sprintf("wildlife animal %d", a.ID), x, y, config.CageSize / 2})
	}
	out = append(out, circleOverlaps(cages)...)

	return out
}

func circleOverlaps(cs []circle) []string {
	var out []string
	for i := 0; i < len(cs); i++ {
		for k := i + 1; k < len(cs); k++ {
			a, b := cs[i], cs[k]
			if math.Hypot(a.x-b.x, a.y-b.y) < a.r+b.r {
				out = append(out, fmt.Sprintf("%s overlaps %s", a.name, b.name))
			}
		}
	}
	return out
}
