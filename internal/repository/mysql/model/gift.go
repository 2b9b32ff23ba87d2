package model

import (
	"time"

	"github.com/Guyuepp/vidstream/domain"
)

type Gift struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	Icon      string    `gorm:"type:varchar(255)"`
	Price     int64     `gorm:"not null"`
	Limited   bool      `gorm:"not null;default:false"`
	Seats     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Gift) TableName() string {
	return "gift"
}

func (m *Gift) ToDomain() domain.Gift {
	return domain.Gift{
		ID:        m.ID,
		Name:      m.Name,
		Icon:      m.Icon,
		Price:     m.Price,
		Limited:   m.Limited,
		Seats:     m.Seats,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewGiftFromDomain(g *domain.Gift) *Gift {
	return &Gift{
		ID:        g.ID,
		Name:      g.Name,
		Icon:      g.Icon,
		Price:     g.Price,
		Limited:   g.Limited,
		Seats:     g.Seats,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// GiftRecord 的 event_id 唯一索引是消费端的幂等保证: 消息重投时插入会撞键
type GiftRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;type:varchar(36);uniqueIndex;not null"`
	GiftID     int64     `gorm:"column:gift_id;not null;index"`
	VideoID    int64     `gorm:"column:video_id;not null;index"`
	SenderID   int64     `gorm:"column:sender_id;not null;index"`
	ReceiverID int64     `gorm:"column:receiver_id;not null"`
	Count      int64     `gorm:"not null"`
	Coins      int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (GiftRecord) TableName() string {
	return "gift_record"
}

func (m *GiftRecord) ToDomain() domain.GiftRecord {
	return domain.GiftRecord{
		ID:         m.ID,
		EventID:    m.EventID,
		GiftID:     m.GiftID,
		VideoID:    m.VideoID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Count:      m.Count,
		Coins:      m.Coins,
		CreatedAt:  m.CreatedAt,
	}
}

func NewGiftRecordFromDomain(r *domain.GiftRecord) *GiftRecord {
	return &GiftRecord{
		ID:         r.ID,
		EventID:    r.EventID,
		GiftID:     r.GiftID,
		VideoID:    r.VideoID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		Count:      r.Count,
		Coins:      r.Coins,
		CreatedAt:  r.CreatedAt,
	}
}
