package shift

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

// 已经是规范形式的 token，例如 08:00-16:00
var normalizedToken = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// Parse 把自由输入解析为班次 token
// 规则：
//   - 已经是 HH:MM-HH:MM 的输入原样返回
//   - 缺勤关键字（不区分大小写）返回缺勤哨兵
//   - 其余输入按 - 拆成两段，每段归一化为 HH:MM：
//     含 : 的段补齐两位小时，含 _ 的段左边是小时、右边是分钟
//     （分钟右补零到两位，3 表示 30），纯数字段视为整点
//
// 无法解析的输入不会报错，而是原样返回，当作不透明的自定义标签
// 这是有意保留的宽松策略，不是校验漏洞
func Parse(raw string) string {
	if normalizedToken.MatchString(raw) {
		return raw
	}
	if strings.EqualFold(strings.TrimSpace(raw), domain.TokenAbsent) {
		return domain.TokenAbsent
	}

	sides := strings.Split(raw, "-")
	if len(sides) != 2 {
		return raw
	}

	start, ok := normalizeSide(sides[0])
	if !ok {
		return raw
	}
	end, ok := normalizeSide(sides[1])
	if !ok {
		return raw
	}

	return start + "-" + end
}

// normalizeSide 把 token 的一侧归一化为 HH:MM
func normalizeSide(side string) (string, bool) {
	side = strings.TrimSpace(side)

	var hourPart, minutePart string

	switch {
	case strings.Contains(side, ":"):
		segments := strings.Split(side, ":")
		if len(segments) != 2 {
			return "", false
		}
		hourPart = segments[0]
		minutePart = segments[1]
	case strings.Contains(side, "_"):
		segments := strings.Split(side, "_")
		if len(segments) != 2 {
			return "", false
		}
		hourPart = segments[0]
		minutePart = segments[1]
		// 分钟右补零到两位，9_3 和 9_30 都表示 09:30
		if len(minutePart) == 1 {
			minutePart += "0"
		}
	default:
		hourPart = side
		minutePart = "00"
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
