package week

import (
	"time"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

// Window 表示排班表展示的一周，锚点恒为周一
type Window struct {
	Anchor time.Time `json:"anchor"`
}

// Normalize 把任意日期映射到它所在 ISO 周的窗口
// 周日会回退到前一个周一
func Normalize(t time.Time) Window {
	d := domain.NormalizeDate(t)
	offset := (int(d.Weekday()) + 6) % 7
	return Window{Anchor: d.AddDate(0, 0, -offset)}
}

// Current 返回今天所在的窗口
func Current() Window {
	return Normalize(time.Now())
}

// Days 按顺序返回窗口内的五个工作日（周一到周五）
func (w Window) Days() []time.Time {
	days := make([]time.Time, 5)
	for i := range days {
		days[i] = w.Anchor.AddDate(0, 0, i)
	}
	return days
}

// Shift 返回偏移 deltaWeeks 周后的窗口
// 偏移量是 7 的倍数，所以锚点仍然是周一
func (w Window) Shift(deltaWeeks int) Window {
	return Window{Anchor: w.Anchor.AddDate(0, 0, 7*deltaWeeks)}
}

// Contains 判断某个日期是否落在窗口的工作日内
func (w Window) Contains(t time.Time) bool {
	d := domain.NormalizeDate(t)
	for _, day := range w.Days() {
		if day.Equal(d) {
			return true
		}
	}
	return false
}

// 前端是德语界面，表头用德语的星期名
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// DayLabel 返回日期对应的星期标签
func DayLabel(t time.Time) string {
	return weekdayLabels[t.Weekday()]
}
