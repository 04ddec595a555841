package config

// 布局配置常量
// 本文件定义了逻辑屏幕尺寸以及各场景中元素的尺寸参数。
// 站点实体的位置来自 data/stations.yaml，单位为逻辑屏幕的百分比，
// 通过 PercentToScreen 转换为像素坐标。

// 逻辑屏幕尺寸（与窗口尺寸无关，Ebitengine 自动缩放）
const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 1280

	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 720

	// TicksPerSecond 固定逻辑帧率
	TicksPerSecond = 60

	// DeltaTime 每帧时间增量（秒）
	DeltaTime = 1.0 / TicksPerSecond
)

// 站点场景通用 UI
const (
	// HeaderY 标题横幅中心Y坐标
	HeaderY = 48.0

	// HeaderHeight 标题横幅高度
	HeaderHeight = 56.0

	// HintBubbleWidth 引导气泡宽度
	HintBubbleWidth = 360.0

	// HintBubbleX, HintBubbleY 引导气泡左上角
	HintBubbleX = ScreenWidth - HintBubbleWidth - 24.0
	HintBubbleY = 470.0

	// ContinueButtonWidth, ContinueButtonHeight "继续"按钮尺寸（站点完成后出现）
	ContinueButtonWidth  = 260.0
	ContinueButtonHeight = 64.0

	// ContinueButtonY "继续"按钮中心Y坐标
	ContinueButtonY = 180.0

	// ProgressCounterX, ProgressCounterY 进度计数器位置（左上角）
	ProgressCounterX = 24.0
	ProgressCounterY = 24.0
)

// 站点实体尺寸
// 除建筑外，所有实体的百分比坐标都表示中心点；
// 建筑的坐标表示屋顶左上角（与原始布局相同）。
const (
	// SpotRadius 种植点半径
	SpotRadius = 52.0

	// ToolChipSize 工具（种子/水壶）拖拽源的边长
	ToolChipSize = 96.0

	// TrashRadius 垃圾拖拽源半径
	TrashRadius = 42.0

	// BinWidth, BinHeight 垃圾桶尺寸
	BinWidth  = 190.0
	BinHeight = 140.0

	// HouseWidth, HouseHeight 普通房屋尺寸（含屋顶）
	HouseWidth  = 150.0
	HouseHeight = 150.0

	// TallBuildingWidth, TallBuildingHeight 高楼尺寸（含屋顶）
	TallBuildingWidth  = 120.0
	TallBuildingHeight = 270.0

	// RoofHeight 屋顶（太阳能板安装区域）高度
	RoofHeight = 40.0

	// PanelChipWidth, PanelChipHeight 太阳能板拖拽源尺寸
	PanelChipWidth  = 120.0
	PanelChipHeight = 80.0

	// CageSize 动物笼子边长
	CageSize = 110.0

	// HabitatWidth, HabitatHeight 栖息地投放区域尺寸
	HabitatWidth  = 420.0
	HabitatHeight = 190.0
)

// 拖拽反馈
const (
	// RejectionTTL 错误投放的抖动标记持续时间（秒），新的拒绝会重新计时
	RejectionTTL = 1.0

	// SuccessFlashTTL 正确投放的高亮持续时间（秒）
	SuccessFlashTTL = 1.0

	// RejectionShakeAmplitude 抖动幅度（像素）
	RejectionShakeAmplitude = 14.0

	// DragPreviewAlpha 拖拽预览的透明度
	DragPreviewAlpha = 0.9
)

// 地图场景
const (
	// MapCardWidth, MapCardHeight 站点卡片尺寸
	MapCardWidth  = 440.0
	MapCardHeight = 300.0

	// MapCardGap 卡片之间的水平间距
	MapCardGap = 60.0

	// MapCardY 卡片顶部Y坐标
	MapCardY = 190.0

	// MapArrowSize 翻页箭头尺寸
	MapArrowSize = 64.0
)

// PercentToScreen 将百分比坐标转换为逻辑屏幕像素坐标
func PercentToScreen(px, py float64) (float64, float64) {
	return px / 100.0 * ScreenWidth, py / 100.0 * ScreenHeight
}

// ScreenToPercent 将逻辑屏幕像素坐标转换为百分比坐标
func ScreenToPercent(x, y float64) (float64, float64) {
	return x / ScreenWidth * 100.0, y / ScreenHeight * 100.0
}
