package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/week"
)

// GetAssignment 返回某个 (日期, 成员) 对上的班次 token
// 不存在记录时第二个返回值为 false
func (r *Repository) GetAssignment(date time.Time, memberID uuid.UUID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byMember, exists := r.assignments[domain.DateKey(date)]
	if !exists {
		return "", false
	}

	value, exists := byMember[memberID]
	return value, exists
}

// SetAssignment 写入某个 (日期, 成员) 对上的班次 token
// 同一个对上已有记录时覆盖，绝不会产生重复记录
// value 为空等价于删除，成员不存在时拒绝
func (r *Repository) SetAssignment(date time.Time, memberID uuid.UUID, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	exists := false
	for _, member := range r.members {
		if member.ID == memberID {
			exists = true
			break
		}
	}
	if !exists {
		return domain.ErrMemberNotFound
	}

	key := domain.DateKey(date)

	if value == "" {
		r.deleteAssignment(key, memberID)
		return nil
	}

	if _, exists := r.assignments[key]; !exists {
		r.assignments[key] = make(map[uuid.UUID]string)
	}
	r.assignments[key][memberID] = value

	return nil
}

// DeleteAssignment 删除某个 (日期, 成员) 对上的记录，不存在时无事发生
func (r *Repository) DeleteAssignment(date time.Time, memberID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteAssignment(domain.DateKey(date), memberID)
}

// ListAssignmentsForWeek 返回落在窗口五个工作日内的所有排班记录
// 按日期优先、成员展示顺序次之排列
func (r *Repository) ListAssignmentsForWeek(w week.Window) []domain.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignments := make([]domain.Assignment, 0)

	for _, day := range w.Days() {
		byMember, exists := r.assignments[domain.DateKey(day)]
		if !exists {
			continue
		}
		for _, member := range r.members {
			value, exists := byMember[member.ID]
			if !exists {
				continue
			}
			assignments = append(assignments, domain.Assignment{
				Date:       day,
				MemberID:   member.ID,
				ShiftValue: value,
			})
		}
	}

	return assignments
}

// deleteAssignment 删除单条记录并清理空的日期桶
// 调用方必须持有写锁
func (r *Repository) deleteAssignment(key string, memberID uuid.UUID) {
	byMember, exists := r.assignments[key]
	if !exists {
		return
	}

	delete(byMember, memberID)
	if len(byMember) == 0 {
		delete(r.assignments, key)
	}
}

// cascadeDeleteByMember 删除某个成员在所有日期上的记录，不限于可见的一周
// 由 DeleteMember 在同一个临界区内调用
func (r *Repository) cascadeDeleteByMember(memberID uuid.UUID) {
	for key, byMember := range r.assignments {
		delete(byMember, memberID)
		if len(byMember) == 0 {
			delete(r.assignments, key)
		}
	}
}
