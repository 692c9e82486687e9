package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/utils"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/week"
)

var demoMemberNames = []string{"Anna", "Ben", "Clara", "David"}

// SeedDemoData 为开发环境填充一个演示排班表：
// 固定的演示成员，加上用默认班次随机填充约六成的本周格子
// 状态在内存中，进程重启后会重新生成
func SeedDemoData(r *repository.Repository) {
	members := make([]*domain.Member, 0, len(demoMemberNames))
	for _, name := range demoMemberNames {
		member, err := r.CreateMember(name)
		if err != nil {
			// 重复填充时会在这里被挡住，不算错误
			slog.Warn("跳过演示成员", "name", name, "error", err)
			continue
		}
		members = append(members, member)
	}

	defaults := domain.DefaultShiftDefinitions()
	window := week.Current()

	count := 0
	for _, day := range window.Days() {
		for _, member := range members {
			if !utils.Chance(0.6) {
				continue
			}
			value := utils.PickRandom(defaults).Value
			if err := r.SetAssignment(day, member.ID, value); err != nil {
				slog.Error("填充演示排班失败", "member", member.Name, "error", err)
				continue
			}
			count++
		}
	}

	slog.Info("演示数据填充完成", "members", len(members), "assignments", count)
}
