package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontName 内置字体
type FontName string

const (
	// FontRegular 正文字体
	FontRegular FontName = "regular"
	// FontBold 标题和按钮字体
	FontBold FontName = "bold"
)

// fontData 内置字体的 TTF 数据
var fontData = map[FontName][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
}

// ResourceManager 负责字体资源的加载和缓存
//
// 游戏画面全部使用矢量绘制，不需要图片资源；
// 字体使用 golang.org/x/image 内置的 Go 字体（覆盖西班牙语所需的拉丁字符）。
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop no
// synchronization is needed.
type ResourceManager struct {
	sourceCache   map[FontName]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sourceCache:   make(map[FontName]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadFont 加载指定字号的字体
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the font name is unknown or the font data is corrupted.
func (rm *ResourceManager) LoadFont(name FontName, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cached, exists := rm.fontFaceCache[cacheKey]; exists {
		return cached, nil
	}

	source, err := rm.loadSource(name)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont 获取字体，加载失败时返回 nil（调用方跳过文字绘制）
func (rm *ResourceManager) GetFont(name FontName, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(name, size)
	if err != nil {
		return nil
	}
	return face
}

// loadSource 解析并缓存字体源
func (rm *ResourceManager) loadSource(name FontName) (*text.GoTextFaceSource, error) {
	if src, ok := rm.sourceCache[name]; ok {
		return src, nil
	}

	data, ok := fontData[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	rm.sourceCache[name] = src
	return src, nil
}
