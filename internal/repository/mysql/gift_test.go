package mysql

import (
	"context"
	"errors"
	"testing"

	driverMysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/vidstream/domain"
)

func TestGiftStoreRecord(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGiftRepository(gdb)

	mock.ExpectExec("INSERT INTO `gift_record`").
		WithArgs("4f3c8e60-9f2a-4b1d-8a77-0c5e1d2b3f40", int64(3), int64(100), int64(1), int64(7), int64(1), int64(200), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	r := domain.GiftRecord{
		EventID:    "4f3c8e60-9f2a-4b1d-8a77-0c5e1d2b3f40",
		GiftID:     3,
		VideoID:    100,
		SenderID:   1,
		ReceiverID: 7,
		Count:      1,
		Coins:      200,
	}
	require.NoError(t, repo.StoreRecord(context.Background(), &r))

	assert.Equal(t, int64(42), r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftStoreRecordDuplicateEvent(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGiftRepository(gdb)

	// 同一 event_id 重复插入撞唯一索引, 消费端靠 1062 识别消息重投
	mock.ExpectExec("INSERT INTO `gift_record`").
		WillReturnError(&driverMysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry '4f3c8e60-9f2a-4b1d-8a77-0c5e1d2b3f40' for key 'gift_record.event_id'",
		})

	r := domain.GiftRecord{
		EventID:    "4f3c8e60-9f2a-4b1d-8a77-0c5e1d2b3f40",
		GiftID:     3,
		VideoID:    100,
		SenderID:   1,
		ReceiverID: 7,
		Count:      1,
		Coins:      200,
	}
	err := repo.StoreRecord(context.Background(), &r)
	require.Error(t, err)

	var mysqlErr *driverMysql.MySQLError
	require.True(t, errors.As(err, &mysqlErr))
	assert.Equal(t, uint16(1062), mysqlErr.Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}
