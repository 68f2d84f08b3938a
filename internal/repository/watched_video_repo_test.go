package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestMarkWatchedVideo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchedVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `watched_videos`").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	wv, err := repo.Mark(1, 555)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), wv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkWatchedVideoDuplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchedVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `watched_videos`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := repo.Mark(1, 555)
	assert.ErrorIs(t, err, ErrVideoAlreadyWatched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVideoIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewWatchedVideoRepository(db)

	mock.ExpectQuery("SELECT `video_id` FROM `watched_videos`").
		WillReturnRows(sqlmock.NewRows([]string{"video_id"}).AddRow(555).AddRow(777))

	ids, err := repo.ListVideoIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{555, 777}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
