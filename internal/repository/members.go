package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

// GetAllMembers 按展示顺序返回所有成员
func (r *Repository) GetAllMembers() []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]domain.Member, len(r.members))
	copy(members, r.members)

	return members
}

// GetMemberByID 返回指定成员
func (r *Repository) GetMemberByID(id uuid.UUID) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, member := range r.members {
		if member.ID == id {
			m := member
			return &m, nil
		}
	}

	return nil, domain.ErrMemberNotFound
}

// CreateMember 在列表末尾追加一个新成员
// 姓名为空或已存在（精确匹配）时拒绝，列表保持不变
func (r *Repository) CreateMember(name string) (*domain.Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, member := range r.members {
		if member.Name == name {
			return nil, domain.ErrDuplicateName
		}
	}

	member := domain.Member{
		ID:        uuid.New(),
		Name:      name,
		Order:     len(r.members),
		CreatedAt: time.Now(),
	}
	r.members = append(r.members, member)

	return &member, nil
}

// RenameMember 修改成员姓名
// 拒绝规则和 CreateMember 相同，但查重时跳过被改名的成员本身
// 成员 ID 不变，挂在该成员上的排班记录不受影响
func (r *Repository) RenameMember(id uuid.UUID, newName string) (*domain.Member, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, domain.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, member := range r.members {
		if member.ID == id {
			index = i
			continue
		}
		if member.Name == newName {
			return nil, domain.ErrDuplicateName
		}
	}

	if index == -1 {
		return nil, domain.ErrMemberNotFound
	}

	r.members[index].Name = newName
	m := r.members[index]

	return &m, nil
}

// DeleteMember 删除成员并级联删除该成员在所有日期上的排班记录
// 两步在同一个临界区内完成，不存在排班记录悬挂在已删除成员上的中间状态
func (r *Repository) DeleteMember(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, member := range r.members {
		if member.ID == id {
			index = i
			break
		}
	}

	if index == -1 {
		return domain.ErrMemberNotFound
	}

	r.members = append(r.members[:index], r.members[index+1:]...)
	r.recomputeOrders()
	r.cascadeDeleteByMember(id)

	return nil
}

// ReorderMembers 把 from 位置的成员移动到 to 位置，中间的成员顺次移动
// 任一下标越界时拒绝，顺序保持不变
func (r *Repository) ReorderMembers(from, to int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if from < 0 || from >= len(r.members) || to < 0 || to >= len(r.members) {
		return domain.ErrIndexOutOfRange
	}

	member := r.members[from]
	rest := append(r.members[:from], r.members[from+1:]...)

	r.members = make([]domain.Member, 0, len(rest)+1)
	r.members = append(r.members, rest[:to]...)
	r.members = append(r.members, member)
	r.members = append(r.members, rest[to:]...)

	r.recomputeOrders()

	return nil
}

// recomputeOrders 重写所有成员的顺序号，从 0 开始连续
// 调用方必须持有写锁
func (r *Repository) recomputeOrders() {
	for i := range r.members {
		r.members[i].Order = i
	}
}
