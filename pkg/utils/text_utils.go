package utils

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 换行规则:
//   - 在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return wrapWords(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// wrapWords 按单词换行，measure 返回一行文本的宽度
func wrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := ""
	for _, word := range words {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}
		if measure(candidate) <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}
		if measure(word) <= maxWidth {
			currentLine = word
			continue
		}

		// 超长单词：按字符切分
		for _, r := range word {
			next := currentLine + string(r)
			if currentLine != "" && measure(next) > maxWidth {
				lines = append(lines, currentLine)
				next = string(r)
			}
			currentLine = next
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// SanitizeText 移除内置字体无法显示的符号（表情、装饰符号、变体选择符）
// 并压缩多余空格。图形由矢量绘制代替。
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPictograph(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// isPictograph 判断字符是否属于表情或装饰符号区段
func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F000: // 表情、交通、补充符号
		return true
	case r >= 0x2190 && r <= 0x21FF: // 箭头
		return true
	case r >= 0x2300 && r <= 0x23FF: // 技术符号（⏰ 等）
		return true
	case r >= 0x2600 && r <= 0x27BF: // 杂项符号、装饰符号
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	case r == 0x200D || (r >= 0xFE00 && r <= 0xFE0F): // 连接符、变体选择符
		return true
	}
	return r != ' ' && unicode.Is(unicode.So, r) && r > 0x2000
}
