package domain

import (
	"context"
	"time"
)

// Gift is one catalog entry a viewer can send during a live stream.
type Gift struct {
	ID        int64
	Name      string // unique
	Icon      string // icon asset URL
	Price     int64  // coins per unit
	Limited   bool   // limited gifts have per-video seat caps
	Seats     int64  // seat cap per video, only meaningful when Limited
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GiftRecord is one delivered gift, written by the gift worker after the
// event leaves the queue.
type GiftRecord struct {
	ID         int64
	EventID    string // dedup key, carried from the published event
	GiftID     int64
	VideoID    int64
	SenderID   int64
	ReceiverID int64
	Count      int64
	Coins      int64 // Price * Count at send time
	CreatedAt  time.Time
}

// GiftEvent is the message published for every accepted gift send. The
// sender's wallet is already debited when the event is published; the
// consumer persists the record and credits the receiver. EventID is the
// idempotency key: the queue delivers at-least-once, so the consumer relies
// on the unique index over gift_record.event_id to spot redeliveries.
type GiftEvent struct {
	EventID    string `json:"event_id"`
	GiftID     int64  `json:"gift_id"`
	VideoID    int64  `json:"video_id"`
	SenderID   int64  `json:"sender_id"`
	ReceiverID int64  `json:"receiver_id"`
	Count      int64  `json:"count"`
	Coins      int64  `json:"coins"`
}

type GiftRepository interface {
	GetByID(ctx context.Context, id int64) (Gift, error)
	GetByName(ctx context.Context, name string) (Gift, error)
	Fetch(ctx context.Context) ([]Gift, error)
	Store(ctx context.Context, g *Gift) error
	Update(ctx context.Context, g *Gift) error
	Delete(ctx context.Context, id int64) error

	// StoreRecord persists one delivered gift.
	StoreRecord(ctx context.Context, r *GiftRecord) error

	// FetchRecordsByVideo lists a video's delivered gifts, newest first.
	FetchRecordsByVideo(ctx context.Context, videoID int64, limit int64) ([]GiftRecord, error)

	// CountRecords / SumRecordCoins feed the admin stats.
	CountRecords(ctx context.Context) (int64, error)
	SumRecordCoins(ctx context.Context) (int64, error)
}

// GiftSeatCache reserves seats of limited gifts in the cache before anything
// touches the database, so a full seat pool rejects fast under load.
type GiftSeatCache interface {
	// Reserve takes one seat and returns the occupancy after the take.
	// The caller must Release when the send is aborted afterwards.
	Reserve(ctx context.Context, videoID, giftID int64) (int64, error)
	Release(ctx context.Context, videoID, giftID int64) error
}

// GiftEventPublisher hands an accepted gift event to the message queue.
type GiftEventPublisher interface {
	Publish(ctx context.Context, ev GiftEvent) error
}

type GiftUsecase interface {
	GetByID(ctx context.Context, id int64) (Gift, error)
	Fetch(ctx context.Context) ([]Gift, error)
	Store(ctx context.Context, g *Gift) error
	Update(ctx context.Context, g *Gift) error
	Delete(ctx context.Context, id int64) error

	// Send debits the sender, reserves a seat for limited gifts and
	// publishes the event for asynchronous delivery.
	Send(ctx context.Context, senderID, videoID, giftID, count int64) (GiftEvent, error)

	// FetchRecordsByVideo lists a video's delivered gifts.
	FetchRecordsByVideo(ctx context.Context, videoID int64, limit int64) ([]GiftRecord, error)
}
