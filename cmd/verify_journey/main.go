// verify_journey 无窗口地走完整个旅程
//
// 直接调用 Journey 和四个站点引擎，按布局配置执行正确操作，
// 每个站点先做一次错误投放确认会被拒绝，最后检查进度和终点画面。
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/verify_journey [--verbose] [--root .]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/greentrain/pkg/config"
	"github.com/gonewx/greentrain/pkg/embedded"
	"github.com/gonewx/greentrain/pkg/game"
	"github.com/gonewx/greentrain/pkg/station"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	root    = flag.String("root", ".", "项目根目录（包含 data/）")
)

// screenLog 记录每次画面切换
type screenLog struct{}

func (screenLog) ScreenChanged(from, to game.ScreenID) {
	fmt.Printf("  画面: %s → %s\n", from, to)
}

// checker 累计失败的检查项
type checker struct {
	failures int
}

func (c *checker) expect(ok bool, format string, args ...any) {
	if ok {
		fmt.Printf("  ✓ "+format+"\n", args...)
		return
	}
	c.failures++
	fmt.Printf("  ✗ "+format+"\n", args...)
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))

	stations, err := config.LoadStationsConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载站点配置失败: %v\n", err)
		os.Exit(1)
	}
	content, err := config.LoadJourneyConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载旅程配置失败: %v\n", err)
		os.Exit(1)
	}

	c := &checker{}
	j := game.NewJourney()
	j.SetObserver(screenLog{})

	fmt.Println("=== 开始 ===")
	c.expect(!j.SelectStation(1), "开始画面不能直接进入站点")
	c.expect(j.Start(), "开始 → 角色选择")

	avatars := game.AvatarsFromConfig(content)
	c.expect(j.SelectAvatar(avatars[0]), "选择角色 %s", avatars[0].Name)
	c.expect(!j.SelectStation(2), "站点2 尚未解锁")

	for id := 1; id <= game.StationCount; id++ {
		header, _ := stations.Header(id)
		fmt.Printf("\n=== 站点 %d: %s ===\n", id, header.Title)

		c.expect(j.SelectStation(id), "进入站点 %d", id)
		c.expect(!j.AcknowledgeReward(id), "游戏未完成时不能确认奖励")

		var complete bool
		switch id {
		case 1:
			complete = playReforestation(c, station.NewReforestation(stations.Reforestation))
		case 2:
			complete = playRiver(c, station.NewRiver(stations.River))
		case 3:
			complete = playEnergy(c, station.NewEnergy(stations.Energy))
		case 4:
			complete = playWildlife(c, station.NewWildlife(stations.Wildlife))
		}
		c.expect(complete, "站点 %d 完成", id)

		c.expect(j.CompleteStationGame(id), "进入奖励画面: %s", header.Reward.Title)
		c.expect(j.AcknowledgeReward(id), "确认奖励")
		c.expect(j.Progress().CompletedCount() == id, "进度 %d/%d", j.Progress().CompletedCount(), game.StationCount)
	}

	fmt.Println("\n=== 终点 ===")
	c.expect(j.Screen() == game.ScreenFinal, "到达终点画面")
	c.expect(j.Progress().AllComplete(), "所有站点完成")

	j.Restart()
	c.expect(j.Screen() == game.ScreenStart && j.Progress().CompletedCount() == 0, "重新开始后进度清零")

	if c.failures > 0 {
		fmt.Printf("\n%d 项检查失败\n", c.failures)
		os.Exit(1)
	}
	fmt.Println("\n全部检查通过")
}

func report(c *checker, res station.DropResult, want station.Verdict, what string) {
	c.expect(res.Verdict == want, "%s: %s (%q)", what, res.Verdict, res.Hint.Text)
}

func playReforestation(c *checker, r *station.Reforestation) bool {
	spots := r.Spots()
	report(c, r.ApplyTool(spots[0].ID, station.ToolWater), station.VerdictRejected, "空地浇水")

	for _, s := range spots {
		report(c, r.ApplyTool(s.ID, station.ToolSeed), station.VerdictAccepted, fmt.Sprintf("种植点 %d 播种", s.ID))
		report(c, r.ApplyTool(s.ID, station.ToolWater), station.VerdictAccepted, fmt.Sprintf("种植点 %d 浇水", s.ID))
	}
	return r.Complete()
}

func playRiver(c *checker, r *station.River) bool {
	items := r.Items()
	first := items[0]
	wrong := station.Organic
	if first.Category == station.Organic {
		wrong = station.Recyclable
	}
	report(c, r.DropInBin(first.ID, wrong), station.VerdictRejected, first.Label+" 放错垃圾桶")

	for _, it := range items {
		report(c, r.DropInBin(it.ID, it.Category), station.VerdictAccepted, fmt.Sprintf("%s → %s", it.Label, it.Category))
	}
	report(c, r.DropInBin(first.ID, first.Category), station.VerdictIgnored, "已清理的垃圾")
	return r.Complete()
}

func playEnergy(c *checker, e *station.Energy) bool {
	for _, b := range e.Buildings() {
		report(c, e.ToggleLight(b.ID), station.VerdictAccepted, fmt.Sprintf("建筑 %d 关灯", b.ID))
		report(c, e.InstallPanel(b.ID), station.VerdictAccepted, fmt.Sprintf("建筑 %d 安装太阳能板", b.ID))
		report(c, e.InstallPanel(b.ID), station.VerdictIgnored, fmt.Sprintf("建筑 %d 重复安装", b.ID))
	}
	c.expect(e.LightsOff() == len(e.Buildings()), "熄灯 %d", e.LightsOff())
	return e.Complete()
}

func playWildlife(c *checker, w *station.Wildlife) bool {
	animals := w.Animals()
	first := animals[0]
	wrong := station.Sky
	if first.Habitat == station.Sky {
		wrong = station.Tree
	}
	report(c, w.Release(first.ID, wrong), station.VerdictRejected, first.Name+" 栖息地不对")

	for _, a := range animals {
		report(c, w.Release(a.ID, a.Habitat), station.VerdictAccepted, fmt.Sprintf("%s → %s", a.Name, a.Habitat))
	}
	return w.Complete()
}
