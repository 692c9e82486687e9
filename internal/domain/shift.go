package domain

// ShiftDefinition 表示一个已知的班次定义
// label 在目录中唯一，value 是班次的规范 token（自定义班次的 value 就是其 label）
type ShiftDefinition struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TokenAbsent 表示"缺勤"的哨兵 token
const TokenAbsent = "abwesend"

// DefaultShiftDefinitions 返回启动时注册的默认班次
// 顺序即目录顺序，不可变更
func DefaultShiftDefinitions() []ShiftDefinition {
	return []ShiftDefinition{
		{Label: "08:00 bis 16:00", Value: "8-16"},
		{Label: "09:30 bis 18:00", Value: "9_30-18"},
		{Label: "08:00 bis 09:30", Value: "8-9_30"},
		{Label: "16:00 bis 18:00", Value: "16-18"},
	}
}
