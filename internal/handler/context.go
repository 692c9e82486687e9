package handler

type ContextKey string

var (
	MemberCtxKey ContextKey = "member"
)
