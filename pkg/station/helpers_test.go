package station

import (
	"os"
	"testing"

	"github.com/gonewx/greentrain/pkg/config"
)

// loadStations 读取随程序发布的站点布局
func loadStations(t *testing.T) *config.StationsConfig {
	t.Helper()
	data, err := os.ReadFile("../../data/stations.yaml")
	if err != nil {
		t.Fatalf("read stations.yaml: %v", err)
	}
	cfg, err := config.ParseStationsConfig(data)
	if err != nil {
		t.Fatalf("parse stations.yaml: %v", err)
	}
	return cfg
}
