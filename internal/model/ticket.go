package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SaleStatus 販售狀態類型
type SaleStatus string

const (
	SaleStatusBeforeSale SaleStatus = "before_sale"
	SaleStatusOnSale     SaleStatus = "on_sale"
	SaleStatusEnded      SaleStatus = "ended"
)

// IsValid 驗證狀態是否有效
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusBeforeSale, SaleStatusOnSale, SaleStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s SaleStatus) CanTransitionTo(target SaleStatus) bool {
	transitions := map[SaleStatus][]SaleStatus{
		SaleStatusBeforeSale: {SaleStatusOnSale, SaleStatusEnded},
		SaleStatusOnSale:     {SaleStatusEnded},
		SaleStatusEnded:      {}, // 販售結束後不再變更
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// ticketNamespace 產生票券 ID 用的固定 namespace
var ticketNamespace = uuid.MustParse("6f1c1b62-8b1e-4c9a-9e44-0a2d7c53b8a1")

// NewTicketID 由正規化後的比賽名稱與比賽日期產生確定性 ID
// 重複抓取同一場比賽永遠得到同一個 ID
func NewTicketID(matchName string, matchDate time.Time) uuid.UUID {
	name := strings.ToLower(strings.Join(strings.Fields(matchName), " "))
	key := name + "|" + matchDate.UTC().Format("2006-01-02")
	return uuid.NewSHA1(ticketNamespace, []byte(key))
}

// Ticket 客場門票販售窗口
type Ticket struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	MatchName             string     `json:"match_name" db:"match_name"`
	MatchDate             time.Time  `json:"match_date" db:"match_date"`
	HomeTeam              *string    `json:"home_team,omitempty" db:"home_team"`
	AwayTeam              *string    `json:"away_team,omitempty" db:"away_team"`
	SaleStartDate         *time.Time `json:"sale_start_date,omitempty" db:"sale_start_date"`
	SaleEndDate           *time.Time `json:"sale_end_date,omitempty" db:"sale_end_date"`
	Venue                 *string    `json:"venue,omitempty" db:"venue"`
	TicketTypes           []string   `json:"ticket_types,omitempty" db:"ticket_types"`
	TicketURL             *string    `json:"ticket_url,omitempty" db:"ticket_url"`
	SaleStatus            SaleStatus `json:"sale_status" db:"sale_status"`
	NotificationScheduled bool       `json:"notification_scheduled" db:"notification_scheduled"`
	Version               int        `json:"version" db:"version"`
	ScrapedAt             time.Time  `json:"scraped_at" db:"scraped_at"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// IsValidForNotification 此時點是否仍值得排程通知
// 比賽已開始、販售開始時間未知、或已超過販售開始 24 小時都視為無效
func (t *Ticket) IsValidForNotification(now time.Time) bool {
	if !t.MatchDate.After(now) {
		return false
	}
	if t.SaleStartDate == nil {
		return false
	}
	if now.Sub(*t.SaleStartDate) > 24*time.Hour {
		return false
	}
	return true
}

// RequiresNotification 是否尚需排程通知
func (t *Ticket) RequiresNotification() bool {
	return t.SaleStatus == SaleStatusBeforeSale &&
		!t.NotificationScheduled &&
		t.SaleStartDate != nil
}

// ShouldScheduleNotification 是否應該現在排程通知
func (t *Ticket) ShouldScheduleNotification(now time.Time) bool {
	return t.IsValidForNotification(now) && t.RequiresNotification()
}

// NeedsReschedule 與前次抓取結果相比，是否有需要重排通知的變更
// ticketTypes 以集合比較，順序不影響結果
func (t *Ticket) NeedsReschedule(previous *Ticket) bool {
	if !equalTimePtr(t.SaleStartDate, previous.SaleStartDate) {
		return true
	}
	if !equalStringSet(t.TicketTypes, previous.TicketTypes) {
		return true
	}
	if !equalStringPtr(t.TicketURL, previous.TicketURL) {
		return true
	}
	return false
}

// ShouldRescheduleNotification 既有排程是否需要先取消：已排程且再抓取後有相關變更
// 取消後要不要重排，由旗標歸零後的 ShouldScheduleNotification 另行判斷
func (t *Ticket) ShouldRescheduleNotification(previous *Ticket) bool {
	return previous != nil && t.NotificationScheduled && t.NeedsReschedule(previous)
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
