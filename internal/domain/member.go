package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member 表示排班表中的一个成员
// ID 是稳定标识，改名不会改变 ID，排班记录始终挂在 ID 上
type Member struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
