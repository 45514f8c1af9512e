package viewstate

// Selector 從封閉的選項集合中維持一個作用中的值。
// 未知的值會落回第一個選項。
type Selector struct {
	options []string
	active  string
}

func NewSelector(options ...string) *Selector {
	if len(options) == 0 {
		panic("viewstate: selector needs at least one option")
	}
	return &Selector{
		options: append([]string(nil), options...),
		active:  options[0],
	}
}

// Select 設定作用中的值，回傳值是否有改變
func (s *Selector) Select(v string) bool {
	next := v
	if !s.Valid(v) {
		next = s.Fallback()
	}
	if next == s.active {
		return false
	}
	s.active = next
	return true
}

func (s *Selector) Active() string { return s.active }

func (s *Selector) Is(v string) bool { return s.active == v }

func (s *Selector) Fallback() string { return s.options[0] }

func (s *Selector) Options() []string {
	return append([]string(nil), s.options...)
}

// Valid 回報 v 是否屬於選項集合
func (s *Selector) Valid(v string) bool {
	for _, opt := range s.options {
		if opt == v {
			return true
		}
	}
	return false
}

type SelectorState struct {
	Active  string   `json:"active"`
	Options []string `json:"options"`
}

func (s *Selector) Snapshot() SelectorState {
	return SelectorState{Active: s.active, Options: s.Options()}
}
