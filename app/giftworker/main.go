package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"

	driverMysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/vidstream/domain"
	mysqlRepo "github.com/Guyuepp/vidstream/internal/repository/mysql"
	"github.com/Guyuepp/vidstream/internal/repository/rabbitmq"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

// 礼物消费者进程: 从队列取出已扣款的礼物事件, 落库流水并给接收者加币
func main() {
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open connection to database", err)
	}

	conn, err := amqp.Dial(os.Getenv("AMQP_URL"))
	if err != nil {
		log.Fatal("failed to open connection to rabbitmq", err)
	}
	defer conn.Close()

	consumeGiftEvents(conn, db)
}

func consumeGiftEvents(conn *amqp.Connection, db *gorm.DB) {
	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("failed to open a channel", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		rabbitmq.QueueGift, // name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		log.Fatal("failed to declare gift queue", err)
	}

	msgs, err := ch.Consume(
		rabbitmq.QueueGift, // queue
		"",                 // consumer
		false,              // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // args
	)
	if err != nil {
		log.Fatal("failed to register gift consumer", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			logCtx := logrus.WithField("body", string(d.Body)).WithField("redelivered", d.Redelivered)
			logCtx.Info("received a gift event")

			var ev domain.GiftEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				logCtx.WithError(err).Error("failed to unmarshal gift event")
				// 坏消息无法重试, 直接丢弃
				d.Nack(false, false)
				continue
			}

			// 流水和加币必须同一事务, 只成功一半会造成账目不平
			err := db.Transaction(func(tx *gorm.DB) error {
				giftRepo := mysqlRepo.NewGiftRepository(tx)
				userRepo := mysqlRepo.NewUserRepository(tx)

				record := &domain.GiftRecord{
					EventID:    ev.EventID,
					GiftID:     ev.GiftID,
					VideoID:    ev.VideoID,
					SenderID:   ev.SenderID,
					ReceiverID: ev.ReceiverID,
					Count:      ev.Count,
					Coins:      ev.Coins,
				}
				if err := giftRepo.StoreRecord(context.Background(), record); err != nil {
					return err
				}
				return userRepo.AddCoins(context.Background(), ev.ReceiverID, ev.Coins)
			})
			if err != nil {
				var mysqlErr *driverMysql.MySQLError
				if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
					// 重复消费, 按成功确认
					logCtx.WithError(err).Warn("duplicate gift event, acking as processed")
					d.Ack(false)
				} else {
					logCtx.WithError(err).Error("failed to process gift event, requeueing")
					d.Nack(false, true)
				}
			} else {
				d.Ack(false)
			}
		}
	}()

	logrus.Info("waiting for gift events, press CTRL+C to exit")
	<-forever
}
