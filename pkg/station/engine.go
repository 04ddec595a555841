// Package station 实现四个站点共用的交互引擎
//
// 每个站点都是"实体列表 + 转换规则 + 完成条件"：
// 一次投放（或点击）作用在一个实体上，规则返回新状态和判定结果，
// 引擎在每次被接受的修改后同步检查完成条件。完成状态一旦达成就不会撤销，
// 之后的输入一律忽略。
package station

import (
	"fmt"
	"log"
)

// Verdict 一次输入的判定结果
type Verdict int

const (
	// VerdictIgnored 无效输入且不需要反馈（如对已清理的垃圾投放）
	VerdictIgnored Verdict = iota
	// VerdictAccepted 输入被接受，实体状态已改变
	VerdictAccepted
	// VerdictRejected 错误投放，状态不变，需要给出反馈
	VerdictRejected
)

// String 返回判定结果名称
func (v Verdict) String() string {
	switch v {
	case VerdictIgnored:
		return "ignored"
	case VerdictAccepted:
		return "accepted"
	case VerdictRejected:
		return "rejected"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Hint 引导气泡的当前内容
type Hint struct {
	Text    string
	IsError bool
}

// Outcome 规则对一次输入的处理结果
type Outcome struct {
	Verdict Verdict

	// HintKey 需要显示的引导文本键，为空时保持当前文本不变
	HintKey string

	// IsError 引导文本是否以错误样式显示
	IsError bool
}

// Rule 转换规则：根据实体当前状态和输入返回新状态及结果
// 结果为 Rejected 或 Ignored 时返回的实体会被丢弃
type Rule[E, I any] func(entity E, input I) (E, Outcome)

// DropResult 一次输入的完整结果
type DropResult struct {
	Verdict Verdict

	// Completed 本次输入使站点完成（每个引擎只会出现一次）
	Completed bool

	// Hint 处理后的引导文本
	Hint Hint
}

// Engine 通用站点引擎
// E 是实体类型，I 是输入类型（工具、垃圾桶类别、栖息地……）
type Engine[E, I any] struct {
	name     string
	entities []E
	idOf     func(E) int
	rule     Rule[E, I]
	done     func(E) bool
	hints    map[string]string

	hint     Hint
	complete bool
}

// NewEngine 创建引擎
//
// 参数：
//   - name: 站点名，用于日志
//   - entities: 初始实体（会被复制）
//   - idOf: 取实体编号
//   - rule: 转换规则
//   - done: 单个实体是否达成目标，所有实体都达成时站点完成
//   - hints: 引导文本表，必须包含 "intro" 和 "complete"
func NewEngine[E, I any](name string, entities []E, idOf func(E) int, rule Rule[E, I], done func(E) bool, hints map[string]string) *Engine[E, I] {
	e := &Engine[E, I]{
		name:     name,
		entities: append([]E(nil), entities...),
		idOf:     idOf,
		rule:     rule,
		done:     done,
		hints:    hints,
	}
	e.hint = Hint{Text: hints[hintIntro]}

	// 初始布局可能已经满足完成条件（调试布局），此时直接视为完成
	if e.allDone() {
		e.complete = true
		e.hint = Hint{Text: hints[hintComplete]}
	}
	return e
}

const (
	hintIntro    = "intro"
	hintComplete = "complete"
)

// Apply 对编号为 id 的实体应用输入
func (e *Engine[E, I]) Apply(id int, input I) DropResult {
	if e.complete {
		return DropResult{Verdict: VerdictIgnored, Hint: e.hint}
	}

	idx := e.indexOf(id)
	if idx < 0 {
		log.Printf("[Station] %s: 未知实体 %d", e.name, id)
		return DropResult{Verdict: VerdictIgnored, Hint: e.hint}
	}

	next, out := e.rule(e.entities[idx], input)
	if out.HintKey != "" {
		e.hint = Hint{Text: e.hints[out.HintKey], IsError: out.IsError}
	}

	result := DropResult{Verdict: out.Verdict}
	if out.Verdict == VerdictAccepted {
		e.entities[idx] = next
		if e.allDone() {
			e.complete = true
			e.hint = Hint{Text: e.hints[hintComplete]}
			result.Completed = true
			log.Printf("[Station] %s: 站点完成", e.name)
		}
	}

	log.Printf("[Station] %s: 实体 %d 输入 %v -> %s", e.name, id, input, out.Verdict)
	result.Hint = e.hint
	return result
}

// Entities 返回实体快照
func (e *Engine[E, I]) Entities() []E {
	return append([]E(nil), e.entities...)
}

// Entity 按编号查找实体
func (e *Engine[E, I]) Entity(id int) (E, bool) {
	if idx := e.indexOf(id); idx >= 0 {
		return e.entities[idx], true
	}
	var zero E
	return zero, false
}

// Complete 站点是否已完成
func (e *Engine[E, I]) Complete() bool {
	return e.complete
}

// Hint 当前引导文本
func (e *Engine[E, I]) Hint() Hint {
	return e.hint
}

// Progress 返回已达成目标的实体数和总数
func (e *Engine[E, I]) Progress() (int, int) {
	n := 0
	for _, ent := range e.entities {
		if e.done(ent) {
			n++
		}
	}
	return n, len(e.entities)
}

func (e *Engine[E, I]) allDone() bool {
	if len(e.entities) == 0 {
		return false
	}
	for _, ent := range e.entities {
		if !e.done(ent) {
			return false
		}
	}
	return true
}

func (e *Engine[E, I]) indexOf(id int) int {
	for i, ent := range e.entities {
		if e.idOf(ent) == id {
			return i
		}
	}
	return -1
}
