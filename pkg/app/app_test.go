package app

import (
	"testing"

	"github.com/gonewx/greentrain/pkg/config"
)

// TestStartAvatar 调试启动时的角色选择
func TestStartAvatar(t *testing.T) {
	content := &config.JourneyConfig{
		Avatars: []config.AvatarConfig{
			{ID: "luna", Name: "Luna"},
			{ID: "teo", Name: "Teo"},
		},
	}

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"未指定取第一个", "", "luna", false},
		{"按ID查找", "teo", "teo", false},
		{"未知角色", "zorro", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := startAvatar(content, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("startAvatar(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if a.ID != tt.want {
				t.Errorf("startAvatar(%q) = %q, want %q", tt.id, a.ID, tt.want)
			}
		})
	}
}
