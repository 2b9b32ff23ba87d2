package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"

	"github.com/Guyuepp/vidstream/domain"
)

const QueueGift = "vidstream.gift.queue"

type giftEventPublisher struct {
	conn *amqp.Connection
}

var _ domain.GiftEventPublisher = (*giftEventPublisher)(nil)

// NewGiftEventPublisher 声明持久化队列并返回发布器
func NewGiftEventPublisher(conn *amqp.Connection) (*giftEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		QueueGift, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return nil, err
	}

	return &giftEventPublisher{conn: conn}, nil
}

func (p *giftEventPublisher) Publish(ctx context.Context, ev domain.GiftEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",        // exchange
		QueueGift, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // 确保消息持久化
		})
}
