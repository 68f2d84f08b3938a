package service

import (
	"context"
	"testing"

	"monateg/internal/domain"

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

func TestRecordEarningCreditsBalanceAtomically(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "today_earnings"}).AddRow(1, 0.0, 0.0))
	mock.ExpectExec("INSERT INTO `earnings`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	earning, err := svc.RecordEarning(context.Background(), 1, 0.0005, "ad", "")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), earning.ID)
	assert.Equal(t, 0.0005, earning.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordEarningReplayedKeyAppliesNoSecondCredit(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `earnings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "source"}).
			AddRow(7, 1, 0.0005, "ad"))
	mock.ExpectCommit()

	earning, err := svc.RecordEarning(context.Background(), 1, 0.0005, "ad", "evt-123")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), earning.ID)
	// No INSERT or UPDATE was expected; a second credit would fail here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordEarningConcurrentReplayReturnsOriginal(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	// Both requests miss the pre-check; this one loses the insert race
	// after acquiring the user lock and must return the winner's row.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `earnings`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "today_earnings"}).AddRow(1, 0.0, 0.0))
	mock.ExpectExec("INSERT INTO `earnings`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectQuery("SELECT (.+) FROM `earnings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "source"}).
			AddRow(7, 1, 0.0005, "ad"))
	mock.ExpectCommit()

	earning, err := svc.RecordEarning(context.Background(), 1, 0.0005, "ad", "evt-123")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), earning.ID)
	// No balance UPDATE was expected: the winner already applied the credit.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordEarningUnknownUser(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.RecordEarning(context.Background(), 99, 1, "ad", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestWithdrawalDebitsBalance(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(1, 0.0005))
	mock.ExpectExec("INSERT INTO `withdrawals`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, err := svc.RequestWithdrawal(context.Background(), 1, 0.0005, "paypal", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), w.ID)
	assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
	assert.NotEmpty(t, w.Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestWithdrawalInsufficientBalanceRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(1, 0.0001))
	mock.ExpectRollback()

	_, err := svc.RequestWithdrawal(context.Background(), 1, 0.0005, "paypal", "user@example.com")
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	// The funds check fails while the row is locked; nothing is written.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReferralPaysCurrentReward(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `referrals`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT (.+) FROM `reward_configs`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "referral_reward"}).AddRow(2, 0.01))
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(10, 1.0))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `earnings`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	ref, reward, err := svc.RecordReferral(context.Background(), 20, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), ref.ID)
	assert.Equal(t, 0.01, reward)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordReferralDuplicatePairRejected(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `referrals`").
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, _, err := svc.RecordReferral(context.Background(), 20, 10)
	assert.ErrorIs(t, err, ErrReferralExists)
	// The whole unit rolls back: no reward lookup, no credit, no earning row.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithdrawalRejectionRefundsBalance(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `withdrawals`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(5, 2, 0.25, domain.WithdrawalStatusPending))
	mock.ExpectExec("UPDATE `withdrawals`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `users`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance"}).AddRow(2, 0.0))
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, err := svc.ResolveWithdrawal(context.Background(), 5, domain.WithdrawalStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusRejected, w.Status)
	assert.NotNil(t, w.ResolvedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithdrawalCompletedDoesNotTouchBalance(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `withdrawals`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(5, 2, 0.25, domain.WithdrawalStatusPending))
	mock.ExpectExec("UPDATE `withdrawals`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, err := svc.ResolveWithdrawal(context.Background(), 5, domain.WithdrawalStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusCompleted, w.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveWithdrawalNonPendingRejected(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewLedgerService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `withdrawals`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "status"}).
			AddRow(5, 2, 0.25, domain.WithdrawalStatusCompleted))
	mock.ExpectRollback()

	_, err := svc.ResolveWithdrawal(context.Background(), 5, domain.WithdrawalStatusRejected)
	assert.ErrorIs(t, err, ErrWithdrawalNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}
