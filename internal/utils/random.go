package utils

import "math/rand"

// PickRandom 从列表中随机取一个元素，仅供演示数据使用
func PickRandom[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// Chance 以给定概率返回 true
func Chance(probability float64) bool {
	return rand.Float64() < probability
}
