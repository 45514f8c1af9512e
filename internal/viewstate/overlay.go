package viewstate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownOverlay = errors.New("unknown overlay")
	ErrOverlayClosed  = errors.New("overlay is not open")
	ErrUnknownField   = errors.New("unknown form field")
)

// ResetPolicy 決定關閉對話框時表單草稿的去留
type ResetPolicy int

const (
	// ClearOnClose 關閉時還原為初始欄位
	ClearOnClose ResetPolicy = iota
	// RetainOnClose 關閉時保留草稿，重新開啟時沿用
	RetainOnClose
)

func (p ResetPolicy) String() string {
	if p == RetainOnClose {
		return "retain"
	}
	return "clear"
}

// OverlaySpec 宣告頁面上的一個對話框
type OverlaySpec struct {
	Key    string
	Parent string // 非空時只能疊在 Parent 之上開啟
	Policy ResetPolicy
	Fields Form
	// Family 為 true 時 Key 視為前綴，例如 "privacy-" 對應 "privacy-showRating"
	Family bool
}

// Overlays 以一個堆疊表示目前開啟的對話框。
// 堆疊只會包含一條宣告過的父子鏈，因此不可能同時開啟兩個互斥的對話框。
type Overlays struct {
	specs    map[string]OverlaySpec
	families []OverlaySpec
	stack    []string
	drafts   map[string]Form
	payloads map[string]any
	onClose  map[string]func()
}

func NewOverlays(specs ...OverlaySpec) *Overlays {
	o := &Overlays{
		specs:    make(map[string]OverlaySpec, len(specs)),
		drafts:   make(map[string]Form),
		payloads: make(map[string]any),
		onClose:  make(map[string]func()),
	}
	for _, spec := range specs {
		if spec.Family {
			o.families = append(o.families, spec)
			continue
		}
		o.specs[spec.Key] = spec
	}
	return o
}

func (o *Overlays) resolve(key string) (OverlaySpec, bool) {
	if spec, ok := o.specs[key]; ok {
		return spec, true
	}
	for _, spec := range o.families {
		if strings.HasPrefix(key, spec.Key) && len(key) > len(spec.Key) {
			return spec, true
		}
	}
	return OverlaySpec{}, false
}

// OnClose 註冊 key 關閉時要執行的函式，用來清除依附在對話框上的頁面狀態
func (o *Overlays) OnClose(key string, fn func()) {
	o.onClose[key] = fn
}

// Known 回報 key 是否為已宣告的對話框
func (o *Overlays) Known(key string) bool {
	_, ok := o.resolve(key)
	return ok
}

// Open 開啟對話框。未知的 key 不改變任何狀態。
func (o *Overlays) Open(key string) error {
	return o.OpenWith(key, nil)
}

// OpenWith 開啟對話框並附帶一個內容物件（例如被選取的錦標賽）
func (o *Overlays) OpenWith(key string, payload any) error {
	spec, ok := o.resolve(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOverlay, key)
	}

	switch {
	case o.Active() == key:
		// 已在最上層
	case o.isOpen(key):
		for o.Active() != key {
			o.pop()
		}
	case spec.Parent != "" && o.Active() == spec.Parent:
		o.stack = append(o.stack, key)
	default:
		o.CloseAll()
		o.stack = append(o.stack, key)
	}

	if _, ok := o.drafts[key]; !ok {
		o.drafts[key] = spec.Fields.Clone()
	}
	if payload != nil {
		o.payloads[key] = payload
	}
	return nil
}

// Close 關閉最上層的對話框，沒有開啟中的對話框時不做事
func (o *Overlays) Close() {
	if len(o.stack) > 0 {
		o.pop()
	}
}

// CloseKey 只有在 key 位於最上層時才關閉它
func (o *Overlays) CloseKey(key string) {
	if o.Active() == key {
		o.pop()
	}
}

// CloseAll 關閉所有對話框
func (o *Overlays) CloseAll() {
	for len(o.stack) > 0 {
		o.pop()
	}
}

func (o *Overlays) pop() {
	key := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	delete(o.payloads, key)

	spec, _ := o.resolve(key)
	if spec.Policy == ClearOnClose {
		o.drafts[key] = spec.Fields.Clone()
	}
	if fn := o.onClose[key]; fn != nil {
		fn()
	}
}

func (o *Overlays) isOpen(key string) bool {
	for _, k := range o.stack {
		if k == key {
			return true
		}
	}
	return false
}

// IsOpen 回報 key 是否在開啟中的鏈上
func (o *Overlays) IsOpen(key string) bool {
	return o.isOpen(key)
}

// Active 回傳最上層的對話框，沒有時回傳空字串
func (o *Overlays) Active() string {
	if len(o.stack) == 0 {
		return ""
	}
	return o.stack[len(o.stack)-1]
}

// Payload 回傳開啟 key 時附帶的內容物件
func (o *Overlays) Payload(key string) any {
	return o.payloads[key]
}

// Form 回傳 key 目前表單草稿的複本
func (o *Overlays) Form(key string) (Form, error) {
	spec, ok := o.resolve(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOverlay, key)
	}
	if draft, ok := o.drafts[key]; ok {
		return draft.Clone(), nil
	}
	return spec.Fields.Clone(), nil
}

// SetField 修改開啟中對話框的一個欄位
func (o *Overlays) SetField(key, field, value string) error {
	spec, ok := o.resolve(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOverlay, key)
	}
	if !o.isOpen(key) {
		return fmt.Errorf("%w: %s", ErrOverlayClosed, key)
	}
	if _, ok := spec.Fields[field]; !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, key, field)
	}
	o.drafts[key][field] = value
	return nil
}

// SetFields 一次修改多個欄位，任何一個欄位不存在時整批都不套用
func (o *Overlays) SetFields(key string, fields map[string]string) error {
	spec, ok := o.resolve(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOverlay, key)
	}
	if !o.isOpen(key) {
		return fmt.Errorf("%w: %s", ErrOverlayClosed, key)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := spec.Fields[name]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, key, name)
		}
	}
	for name, value := range fields {
		o.drafts[key][name] = value
	}
	return nil
}

// ResetForm 將 key 的草稿還原為初始欄位
func (o *Overlays) ResetForm(key string) {
	if spec, ok := o.resolve(key); ok {
		o.drafts[key] = spec.Fields.Clone()
	}
}

// OverlayState 是對話框狀態的快照
type OverlayState struct {
	Open   []string `json:"open"`
	Active string   `json:"active"`
	Form   Form     `json:"form,omitempty"`
	Policy string   `json:"policy,omitempty"`
}

func (o *Overlays) Snapshot() OverlayState {
	state := OverlayState{
		Open:   append([]string{}, o.stack...),
		Active: o.Active(),
	}
	if state.Active != "" {
		spec, _ := o.resolve(state.Active)
		if len(spec.Fields) > 0 {
			state.Form = o.drafts[state.Active].Clone()
		}
		state.Policy = spec.Policy.String()
	}
	return state
}
