// Package search 提供以目前查詢條件篩選 mock 資料列表的純函式。
//
// 所有述詞以 AND 組合；空的查詢或 "all" 篩選視為不過濾。
// Filter 永遠回傳新的切片，不會修改來源列表。
package search

import (
	"strings"
	"time"
)

// Predicate 判斷一筆資料是否保留
type Predicate[T any] func(T) bool

// Filter 回傳符合所有述詞的資料
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Text 在指定欄位中做不分大小寫的子字串比對，任一欄位符合即可
func Text[T any](query string, fields func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals 是分類篩選。selected 為空或等於 all 時不過濾。
func Equals[T any](selected, all string, value func(T) string) Predicate[T] {
	if selected == "" || strings.EqualFold(selected, all) {
		return nil
	}
	return func(item T) bool {
		return strings.EqualFold(value(item), selected)
	}
}

const dateLayout = "2006-01-02"

// DateRange 以包含端點的 YYYY-MM-DD 區間篩選，空的端點代表不設限
func DateRange[T any](start, end string, date func(T) string) Predicate[T] {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil
	}
	from, fromErr := time.Parse(dateLayout, start)
	to, toErr := time.Parse(dateLayout, end)
	return func(item T) bool {
		d, err := time.Parse(dateLayout, date(item))
		if err != nil {
			return false
		}
		if start != "" && (fromErr != nil || d.Before(from)) {
			return false
		}
		if end != "" && (toErr != nil || d.After(to)) {
			return false
		}
		return true
	}
}
