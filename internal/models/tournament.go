package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TournamentKind 區分進行中與即將開始的錦標賽列表
type TournamentKind string

const (
	TournamentActive   TournamentKind = "active"
	TournamentUpcoming TournamentKind = "upcoming"
)

// Tournament 表示一場錦標賽
type Tournament struct {
	ID                  int64                      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Kind                TournamentKind             `gorm:"index" json:"kind"`
	Position            int                        `json:"-"` // 列表中的排序位置
	Name                string                     `gorm:"not null" json:"name"`
	Description         string                     `json:"description,omitempty"`
	Banner              string                     `json:"banner"`
	Format              string                     `json:"format"`
	PrizePool           decimal.Decimal            `gorm:"type:numeric(12,2)" json:"prizePool"`
	CurrentParticipants int                        `json:"currentParticipants"`
	MaxParticipants     int                        `json:"maxParticipants"`
	StartDate           string                     `json:"startDate,omitempty"`
	Deadline            string                     `json:"deadline"`
	SkillLevel          string                     `json:"skillLevel"`
	Status              string                     `json:"status"`
	JustCreated         bool                       `json:"justCreated"`
	Rounds              datatypes.JSONSlice[Round] `json:"rounds,omitempty"`
	EarlyBirdDiscount   string                     `json:"earlyBirdDiscount,omitempty"`
	SpecialFeature      string                     `json:"specialFeature,omitempty"`
}

// Round 是錦標賽的一個賽程階段
type Round struct {
	Round     string `json:"round"`
	Completed bool   `json:"completed"`
}

// DefaultRounds 是新建錦標賽的預設賽程
func DefaultRounds() []Round {
	return []Round{
		{Round: "Quarter Finals"},
		{Round: "Semi Finals"},
		{Round: "Finals"},
	}
}

// ParsePrize 解析 "$10,000" 或 "7500" 這類金額
func ParsePrize(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty prize amount")
	}
	return decimal.NewFromString(clean)
}

// FormatPrize 將金額格式化為 "$10,000"，有小數時保留兩位
func FormatPrize(d decimal.Decimal) string {
	places := int32(0)
	if !d.Equal(d.Truncate(0)) {
		places = 2
	}
	raw := d.Abs().StringFixed(places)

	whole, frac, _ := strings.Cut(raw, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if frac != "" {
		out += "." + frac
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// MustPrize 同 ParsePrize，解析失敗時 panic，只用於常數金額
func MustPrize(s string) decimal.Decimal {
	d, err := ParsePrize(s)
	if err != nil {
		panic(err)
	}
	return d
}
