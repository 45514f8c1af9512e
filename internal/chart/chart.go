// Package chart 建立交給前端 ECharts 元件的宣告式設定物件。
package chart

// Option 對應 ECharts 的 setOption 參數，只涵蓋頁面用到的欄位
type Option struct {
	Animation bool     `json:"animation"`
	Color     []string `json:"color,omitempty"`
	Tooltip   *Tooltip `json:"tooltip,omitempty"`
	Legend    *Legend  `json:"legend,omitempty"`
	Grid      *Grid    `json:"grid,omitempty"`
	XAxis     []Axis   `json:"xAxis,omitempty"`
	YAxis     []Axis   `json:"yAxis,omitempty"`
	Series    []Series `json:"series"`
}

type Tooltip struct {
	Trigger     string       `json:"trigger"`
	AxisPointer *AxisPointer `json:"axisPointer,omitempty"`
}

type AxisPointer struct {
	Type string `json:"type"`
}

type Legend struct {
	Data []string `json:"data"`
	Top  any      `json:"top"`
}

type Grid struct {
	Top          any  `json:"top,omitempty"`
	Left         any  `json:"left"`
	Right        any  `json:"right"`
	Bottom       any  `json:"bottom"`
	ContainLabel bool `json:"containLabel"`
}

type Axis struct {
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	Data        []string `json:"data,omitempty"`
	BoundaryGap *bool    `json:"boundaryGap,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
}

type Series struct {
	Name        string     `json:"name,omitempty"`
	Type        string     `json:"type"`
	Data        any        `json:"data"`
	Smooth      bool       `json:"smooth,omitempty"`
	YAxisIndex  int        `json:"yAxisIndex,omitempty"`
	AreaStyle   *AreaStyle `json:"areaStyle,omitempty"`
	Color       string     `json:"color,omitempty"`
	Layout      string     `json:"layout,omitempty"`
	Orient      string     `json:"orient,omitempty"`
	ItemStyle   *Style     `json:"itemStyle,omitempty"`
	LineStyle   *Style     `json:"lineStyle,omitempty"`
	SeriesLabel *Label     `json:"label,omitempty"`
}

type AreaStyle struct {
	Opacity float64 `json:"opacity"`
}

type Style struct {
	Color string `json:"color"`
}

type Label struct {
	Position string `json:"position,omitempty"`
	Color    string `json:"color,omitempty"`
}

// TreeNode 是樹狀圖（賽程表）的節點
type TreeNode struct {
	Name     string     `json:"name"`
	Children []TreeNode `json:"children,omitempty"`
}

func ptr[T any](v T) *T { return &v }

var defaultGrid = &Grid{Left: "3%", Right: "4%", Bottom: "3%", ContainLabel: true}

func category(labels ...string) Axis {
	return Axis{Type: "category", Data: labels}
}

func value() Axis { return Axis{Type: "value"} }

func line(name string, data []float64) Series {
	return Series{Name: name, Type: "line", Data: data, Smooth: true}
}

func area(s Series) Series {
	s.AreaStyle = &AreaStyle{Opacity: 0.1}
	return s
}

// tail 回傳最後 n 個元素
func tail[T any](s []T, n int) []T {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
