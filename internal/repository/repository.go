package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

// Repository 持有排班表的全部内存状态：成员列表和排班记录
// 持久化后端明确不在范围内，进程退出后状态即消失
//
// chi 会并发地处理请求，所以所有操作都在同一把锁下执行，
// 保证删除成员时的级联删除不会被观察到中间状态
type Repository struct {
	mu sync.RWMutex

	// 按展示顺序排列的成员
	members []domain.Member
	// 日期键 -> 成员 ID -> 班次 token
	assignments map[string]map[uuid.UUID]string
}

func NewRepository() *Repository {
	return &Repository{
		members:     make([]domain.Member, 0),
		assignments: make(map[string]map[uuid.UUID]string),
	}
}
