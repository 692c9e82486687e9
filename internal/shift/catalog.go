package shift

import (
	"strings"
	"sync"

	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
)

// Catalog 是已知班次定义的有序注册表
// 定义按插入顺序排列，默认班次在前，按 label 精确去重
// 本核心不支持删除定义
type Catalog struct {
	mu   sync.RWMutex
	defs []domain.ShiftDefinition
}

func NewCatalog(defaults []domain.ShiftDefinition) *Catalog {
	c := &Catalog{
		defs: make([]domain.ShiftDefinition, 0, len(defaults)),
	}
	c.defs = append(c.defs, defaults...)
	return c
}

// Add 注册一个自定义班次，其 value 就是 label 本身
// label 为空或已存在（区分大小写的精确匹配）时拒绝，目录保持不变
func (c *Catalog) Add(label string) (*domain.ShiftDefinition, error) {
	if strings.TrimSpace(label) == "" {
		return nil, domain.ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, def := range c.defs {
		if def.Label == label {
			return nil, domain.ErrDuplicateName
		}
	}

	def := domain.ShiftDefinition{Label: label, Value: label}
	c.defs = append(c.defs, def)

	return &def, nil
}

// List 按插入顺序返回所有班次定义
func (c *Catalog) List() []domain.ShiftDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]domain.ShiftDefinition, len(c.defs))
	copy(defs, c.defs)

	return defs
}

// FindByValue 按规范 token 查找班次定义
func (c *Catalog) FindByValue(value string) (*domain.ShiftDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, def := range c.defs {
		if def.Value == value {
			return &def, true
		}
	}

	return nil, false
}

// DisplayLabel 返回 token 的展示文本
// 空 token 和缺勤哨兵展示为空串，目录命中返回 label，否则返回归一化形式
func (c *Catalog) DisplayLabel(token string) string {
	if token == "" || token == domain.TokenAbsent {
		return ""
	}

	if def, ok := c.FindByValue(token); ok {
		return def.Label
	}

	return Parse(token)
}
