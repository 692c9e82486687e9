package domain

import "errors"

// 以下错误都表示操作被拒绝，状态未发生任何变化
// 调用方（UI）需要把它们展示给用户并继续运行，因此都不是致命错误
var (
	ErrEmptyName       = errors.New("名称不能为空")
	ErrDuplicateName   = errors.New("名称已存在")
	ErrIndexOutOfRange = errors.New("位置超出范围")
	ErrMemberNotFound  = errors.New("成员不存在")
)
