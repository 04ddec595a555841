package scenes

import (
	"os"
	"testing"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/dnd"
	"github.com/gonewx/greentrain/pkg/embedded"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/station"
	"github.com/gonewx/greentrain/pkg/utils"
)

// TestMain 使用项目根目录作为数据文件系统，场景直接读取真实的 data/ 配置
func TestMain(m *testing.M) {
	embedded.Init(os.DirFS("../.."))
	os.Exit(m.Run())
}

// fakePointer 可以逐帧设置的指针输入
type fakePointer struct {
	pressed bool
	x, y    int
}

func (f *fakePointer) Pointer() (bool, int, int) {
	return f.pressed, f.x, f.y
}

// harness 不打开窗口的完整场景栈：Journey → SceneManager → 场景
type harness struct {
	t       *testing.T
	ctx     *Context
	pointer *fakePointer
	manager *game.SceneManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	stations, err := config.LoadStationsConfig()
	if err != nil {
		t.Fatalf("LoadStationsConfig: %v", err)
	}
	content, err := config.LoadJourneyConfig()
	if err != nil {
		t.Fatalf("LoadJourneyConfig: %v", err)
	}

	pointer := &fakePointer{}
	ctx := &Context{
		Journey:  game.NewJourney(),
		Stations: stations,
		Content:  content,
		Audio:    game.NewAudioManager(nil, true),
		Drag:     utils.NewDragManager(pointer),
		Session:  dnd.NewSession(),
	}

	manager := game.NewSceneManager()
	manager.SetSceneFactory(NewSceneFactory(ctx))
	ctx.Journey.SetObserver(manager)
	manager.Load(ctx.Journey.Screen())

	return &harness{t: t, ctx: ctx, pointer: pointer, manager: manager}
}

// frame 设置指针并推进一帧
func (h *harness) frame(pressed bool, x, y float64) {
	h.pointer.pressed, h.pointer.x, h.pointer.y = pressed, int(x), int(y)
	h.ctx.Drag.Update()
	h.manager.Update(config.DeltaTime)
}

// click 在 (x, y) 按下并松开
func (h *harness) click(x, y float64) {
	h.frame(false, x, y)
	h.frame(true, x, y)
	h.frame(false, x, y)
	h.frame(false, x, y)
}

// drag 从 (x0, y0) 拖到 (x1, y1) 松开
func (h *harness) drag(x0, y0, x1, y1 float64) {
	h.frame(false, x0, y0)
	h.frame(true, x0, y0)
	h.frame(true, (x0+x1)/2, (y0+y1)/2)
	h.frame(true, x1, y1)
	h.frame(false, x1, y1)
	h.frame(false, x1, y1)
}

// jump 直接进入站点 id（之前的站点视为完成）
func (h *harness) jump(id int) {
	h.t.Helper()
	avatars := game.AvatarsFromConfig(h.ctx.Content)
	if !h.ctx.Journey.JumpToStation(id, avatars[0]) {
		h.t.Fatalf("JumpToStation(%d) failed", id)
	}
	h.frame(false, 0, 0)
}

func (h *harness) expectScreen(want game.ScreenID) {
	h.t.Helper()
	if got := h.ctx.Journey.Screen(); got != want {
		h.t.Fatalf("journey screen = %s, want %s", got, want)
	}
	if got := h.manager.CurrentScreen(); got != want {
		h.t.Fatalf("scene manager screen = %s, want %s", got, want)
	}
}

func pos(x, y float64) (float64, float64) {
	return config.PercentToScreen(x, y)
}

func currentScene[T game.Scene](h *harness) T {
	h.t.Helper()
	s, ok := h.manager.GetCurrentScene().(T)
	if !ok {
		h.t.Fatalf("current scene is %T", h.manager.GetCurrentScene())
	}
	return s
}

// TestSceneFactoryBuildsEveryScreen 每个画面都有对应的场景
func TestSceneFactoryBuildsEveryScreen(t *testing.T) {
	h := newHarness(t)
	factory := NewSceneFactory(h.ctx)

	for screen := game.ScreenStart; screen <= game.ScreenFinal; screen++ {
		if scene := factory(screen); scene == nil {
			t.Errorf("factory(%s) = nil", screen)
		}
	}
	if scene := factory(game.ScreenID(99)); scene != nil {
		t.Errorf("factory(99) = %T, want nil", scene)
	}
}

// TestStartToMap 开始按钮 → 角色选择 → 点击角色卡片进入地图
func TestStartToMap(t *testing.T) {
	h := newHarness(t)
	h.expectScreen(game.ScreenStart)

	// 按钮外的点击不起作用
	h.click(100, 100)
	h.expectScreen(game.ScreenStart)

	h.click(config.ScreenWidth/2, 500)
	h.expectScreen(game.ScreenAvatarSelection)

	// 第一张卡片
	h.click(205, 390)
	h.expectScreen(game.ScreenMap)

	avatar, ok := h.ctx.Journey.Avatar()
	want := game.AvatarsFromConfig(h.ctx.Content)[0]
	if !ok || avatar.ID != want.ID {
		t.Errorf("avatar = %+v, %v, want %s", avatar, ok, want.ID)
	}
}

// TestMapLockedStationAndPaging 未解锁的站点点击无效，翻页按钮切换可见站点
func TestMapLockedStationAndPaging(t *testing.T) {
	h := newHarness(t)
	h.click(config.ScreenWidth/2, 500)
	h.click(205, 390)
	h.expectScreen(game.ScreenMap)

	m := currentScene[*MapScene](h)
	if m.page != 0 {
		t.Fatalf("initial page = %d, want 0", m.page)
	}

	// 第二张卡片（站点2）未解锁
	second := m.cardRect(1, 2)
	h.click(second.x+second.w/2, second.y+second.h/2)
	h.expectScreen(game.ScreenMap)
	if !m.layer.feedbackSystem.IsRejected(cardKey(2)) {
		t.Error("locked card should be shaking")
	}

	// 下一页：站点3、4
	arrowY := config.MapCardY + config.MapCardHeight/2
	h.click(config.ScreenWidth-60, arrowY)
	if m.page != 1 {
		t.Fatalf("page after next = %d, want 1", m.page)
	}
	h.click(config.ScreenWidth-60, arrowY)
	if m.page != 1 {
		t.Errorf("page past the end = %d, want 1", m.page)
	}
	h.click(60, arrowY)
	if m.page != 0 {
		t.Errorf("page after prev = %d, want 0", m.page)
	}

	first := m.cardRect(0, 2)
	h.click(first.x+first.w/2, first.y+first.h/2)
	h.expectScreen(game.ScreenStation1Game)
}

// TestMapOpensOnNextStationPage 地图打开时显示下一个站点所在页
func TestMapOpensOnNextStationPage(t *testing.T) {
	h := newHarness(t)
	h.jump(3)
	h.expectScreen(game.ScreenStation3Game)

	// 直接回到地图
	h.manager.Load(game.ScreenMap)
	m := currentScene[*MapScene](h)
	if m.page != 1 {
		t.Errorf("page = %d, want 1 (station 3)", m.page)
	}
}

// TestReforestationDrops 种子和水的投放判定，完成后继续按钮进入奖励画面
func TestReforestationDrops(t *testing.T) {
	h := newHarness(t)
	h.jump(1)
	s := currentScene[*ReforestationScene](h)
	cfg := h.ctx.Stations.Reforestation

	seedX, seedY := screenPos(cfg.Tools[0].Position)
	waterX, waterY := screenPos(cfg.Tools[1].Position)

	// 空地上浇水被拒绝
	spot := s.game.Spots()[0]
	sx, sy := pos(spot.X, spot.Y)
	h.drag(waterX, waterY, sx, sy)
	if got, _ := s.game.Entity(spot.ID); got.State != station.SpotEmpty {
		t.Fatalf("watering an empty spot changed it to %s", got.State)
	}
	if !s.layer.feedbackSystem.IsRejected(spotKey(spot.ID)) {
		t.Error("rejected spot should be shaking")
	}
	if !s.game.Hint().IsError {
		t.Error("rejection should show an error hint")
	}

	// 松开在空白处：什么都不发生
	h.drag(seedX, seedY, config.ScreenWidth/2, 60)
	if done, _ := s.game.Progress(); done != 0 {
		t.Fatalf("blank drop made progress: %d", done)
	}

	for _, spot := range s.game.Spots() {
		x, y := pos(spot.X, spot.Y)
		h.drag(seedX, seedY, x, y)
		h.drag(waterX, waterY, x, y)
	}
	if !s.game.Complete() {
		t.Fatalf("station not complete: %+v", s.game.Spots())
	}
	if !s.hasContinue {
		t.Fatal("continue button should be shown")
	}
	if h.ctx.Session.Active() {
		t.Error("drag session should be idle")
	}

	h.click(config.ScreenWidth/2, config.ContinueButtonY)
	h.expectScreen(game.ScreenStation1Reward)

	h.click(config.ScreenWidth/2, 610)
	h.expectScreen(game.ScreenMap)
	if got := h.ctx.Journey.Progress().CompletedCount(); got != 1 {
		t.Errorf("completed = %d, want 1", got)
	}
}

// TestRiverSorting 垃圾只能放进同类垃圾桶，已清理的垃圾不能再拖起
func TestRiverSorting(t *testing.T) {
	h := newHarness(t)
	h.jump(2)
	s := currentScene[*RiverScene](h)

	bins := map[string][2]float64{}
	for _, b := range h.ctx.Stations.River.Bins {
		x, y := screenPos(b.Position)
		bins[b.Category] = [2]float64{x, y}
	}

	bottle := s.game.Items()[0]
	if bottle.Category != station.Recyclable {
		t.Fatalf("first item category = %s", bottle.Category)
	}
	bx, by := pos(bottle.X, bottle.Y)

	wrong := bins[string(station.Organic)]
	h.drag(bx, by, wrong[0], wrong[1])
	if got, _ := s.game.Entity(bottle.ID); got.Cleaned {
		t.Fatal("bottle accepted by the organic bin")
	}
	if !s.layer.feedbackSystem.IsRejected(binKey(station.Organic)) || !s.layer.feedbackSystem.IsRejected(trashKey(bottle.ID)) {
		t.Error("wrong bin should shake both the bin and the item")
	}

	right := bins[string(station.Recyclable)]
	h.drag(bx, by, right[0], right[1])
	if got, _ := s.game.Entity(bottle.ID); !got.Cleaned {
		t.Fatal("bottle rejected by the recycling bin")
	}

	// 已清理的位置不能再开始拖拽
	h.frame(true, bx, by)
	if h.ctx.Session.Active() {
		t.Error("cleaned item should not start a drag")
	}
	h.frame(false, bx, by)
	h.frame(false, bx, by)

	for _, item := range s.game.Remaining() {
		x, y := pos(item.X, item.Y)
		bin := bins[string(item.Category)]
		h.drag(x, y, bin[0], bin[1])
	}
	if !s.game.Complete() || !s.hasContinue {
		t.Fatalf("river not complete: %d remaining", len(s.game.Remaining()))
	}

	h.click(config.ScreenWidth/2, config.ContinueButtonY)
	h.expectScreen(game.ScreenStation2Reward)
}

// TestEnergyLightsAndPanels 点击建筑关灯，太阳能板拖到建筑上
func TestEnergyLightsAndPanels(t *testing.T) {
	h := newHarness(t)
	h.jump(3)
	s := currentScene[*EnergyScene](h)

	panelX, panelY := screenPos(h.ctx.Stations.Energy.Panel.Position)

	for _, b := range s.game.Buildings() {
		r := buildingRect(b)
		cx, cy := r.Center()

		h.click(cx, cy)
		if got, _ := s.game.Entity(b.ID); got.LightsOn {
			t.Fatalf("building %d: lights still on after click", b.ID)
		}

		h.drag(panelX, panelY, cx, cy)
		if got, _ := s.game.Entity(b.ID); !got.HasPanel {
			t.Fatalf("building %d: panel not installed", b.ID)
		}
	}

	if s.game.LightsOff() != 4 || s.game.Panels() != 4 {
		t.Errorf("lights off = %d, panels = %d", s.game.LightsOff(), s.game.Panels())
	}
	if !s.game.Complete() || !s.hasContinue {
		t.Fatal("energy station should be complete")
	}

	h.click(config.ScreenWidth/2, config.ContinueButtonY)
	h.expectScreen(game.ScreenStation3Reward)
}

// TestEnergyLightToggleBack 再次点击重新开灯，站点不会完成
func TestEnergyLightToggleBack(t *testing.T) {
	h := newHarness(t)
	h.jump(3)
	s := currentScene[*EnergyScene](h)

	b := s.game.Buildings()[0]
	cx, cy := buildingRect(b).Center()
	h.click(cx, cy)
	h.click(cx, cy)
	if got, _ := s.game.Entity(b.ID); !got.LightsOn {
		t.Error("second click should turn the lights back on")
	}
}

// TestWildlifeRescue 动物只能回到自己的栖息地，全部回家后进入终点
func TestWildlifeRescue(t *testing.T) {
	h := newHarness(t)
	h.jump(4)
	s := currentScene[*WildlifeScene](h)

	zones := map[station.Habitat][2]float64{}
	for _, hb := range h.ctx.Stations.Wildlife.Habitats {
		x, y := screenPos(hb.Position)
		zones[station.Habitat(hb.Habitat)] = [2]float64{x, y}
	}

	sloth := s.game.Animals()[0]
	ax, ay := pos(sloth.X, sloth.Y)
	hintBefore := s.game.Hint()

	sky := zones[station.Sky]
	h.drag(ax, ay, sky[0], sky[1])
	if got, _ := s.game.Entity(sloth.ID); got.Rescued {
		t.Fatal("sloth released into the sky")
	}
	if s.game.Hint() != hintBefore {
		t.Error("wrong habitat should not change the hint")
	}

	for _, a := range s.game.Animals() {
		x, y := pos(a.X, a.Y)
		zone := zones[a.Habitat]
		h.drag(x, y, zone[0], zone[1])
	}
	if !s.game.Complete() || !s.hasContinue {
		t.Fatal("wildlife station should be complete")
	}
	if got := len(s.game.RescuedIn(station.Sky)); got != 1 {
		t.Errorf("rescued in sky = %d, want 1", got)
	}

	h.click(config.ScreenWidth/2, config.ContinueButtonY)
	h.expectScreen(game.ScreenStation4Reward)
	h.click(config.ScreenWidth/2, 610)
	h.expectScreen(game.ScreenFinal)

	// 终点画面的按钮重新开始旅程
	h.click(config.ScreenWidth/2, 640)
	h.expectScreen(game.ScreenStart)
	if _, ok := h.ctx.Journey.Avatar(); ok {
		t.Error("restart should clear the avatar")
	}
}

// TestStationReentryResets 重新进入站点时状态重置
func TestStationReentryResets(t *testing.T) {
	h := newHarness(t)
	h.jump(1)
	s := currentScene[*ReforestationScene](h)
	cfg := h.ctx.Stations.Reforestation

	seedX, seedY := screenPos(cfg.Tools[0].Position)
	spot := s.game.Spots()[0]
	x, y := pos(spot.X, spot.Y)
	h.drag(seedX, seedY, x, y)
	if done, _ := s.game.Progress(); done != 0 {
		t.Fatalf("seeding should not count as grown, progress %d", done)
	}
	if got, _ := s.game.Entity(spot.ID); got.State != station.SpotSeeded {
		t.Fatalf("spot state = %s, want seeded", got.State)
	}

	h.manager.Load(game.ScreenStation1Game)
	fresh := currentScene[*ReforestationScene](h)
	if got, _ := fresh.game.Entity(spot.ID); got.State != station.SpotEmpty {
		t.Errorf("re-entered spot state = %s, want empty", got.State)
	}
}

// TestSceneChangeCancelsDrag 切换画面时放弃进行中的拖拽
func TestSceneChangeCancelsDrag(t *testing.T) {
	h := newHarness(t)
	h.jump(2)
	s := currentScene[*RiverScene](h)

	item := s.game.Items()[0]
	x, y := pos(item.X, item.Y)
	h.frame(false, x, y)
	h.frame(true, x, y)
	if !h.ctx.Session.Active() {
		t.Fatal("pressing on trash should start a drag")
	}

	h.manager.Load(game.ScreenMap)
	if h.ctx.Session.Active() {
		t.Error("drag session should be cancelled on scene change")
	}
}
