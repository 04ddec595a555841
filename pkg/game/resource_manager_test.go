package game

import "testing"

// TestLoadFontCaching 同名同字号的字体只创建一次
func TestLoadFontCaching(t *testing.T) {
	rm := NewResourceManager()

	f1, err := rm.LoadFont(FontBold, 32)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	f2, _ := rm.LoadFont(FontBold, 32)
	if f1 != f2 {
		t.Error("font face should be cached")
	}

	f3, _ := rm.LoadFont(FontBold, 24)
	if f3 == f1 {
		t.Error("different sizes should produce different faces")
	}
	if f3.Source != f1.Source {
		t.Error("faces of the same font should share the source")
	}
}

// TestLoadFontUnknown 未知字体返回错误，GetFont 返回 nil
func TestLoadFontUnknown(t *testing.T) {
	rm := NewResourceManager()
	if _, err := rm.LoadFont("comic", 12); err == nil {
		t.Error("LoadFont(comic) should fail")
	}
	if rm.GetFont("comic", 12) != nil {
		t.Error("GetFont(comic) should return nil")
	}
	if rm.GetFont(FontRegular, 18) == nil {
		t.Error("GetFont(regular) should succeed")
	}
}
