package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment 表示某个成员在某一天被分配的班次
// 每个 (日期, 成员) 对至多存在一条记录，value 为空的记录不会被存储
type Assignment struct {
	Date       time.Time `json:"date"`
	MemberID   uuid.UUID `json:"memberId"`
	ShiftValue string    `json:"shiftValue"`
}

// NormalizeDate 将任意时刻归一化为 UTC 零点的日期
// 排班以天为粒度，所有日期在进入存储前都要先归一化
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey 返回日期的存储键
func DateKey(t time.Time) string {
	return NormalizeDate(t).Format("2006-01-02")
}
