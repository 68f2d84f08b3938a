package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monateg/internal/domain"
	"monateg/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrReferralExists       = errors.New("referral already exists")
	ErrWithdrawalNotFound   = errors.New("withdrawal not found")
	ErrWithdrawalNotPending = errors.New("withdrawal is not pending")
)

// LedgerService owns the four balance mutations. Each one runs as a single
// transaction that begins by locking the affected user row, so concurrent
// requests against one user serialize while other users never contend.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// lockUser fetches the user row FOR UPDATE inside tx.
func lockUser(tx *gorm.DB, userID uint64) (*models.User, error) {
	var u models.User
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// RecordEarning appends an earning row and credits balance and
// today_earnings in one unit. A replayed idempotency key returns the
// original row and applies no second credit.
func (s *LedgerService) RecordEarning(ctx context.Context, userID uint64, amount float64, source string, idempotencyKey string) (*models.Earning, error) {
	var earning *models.Earning
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if idempotencyKey != "" {
			var existing models.Earning
			err := tx.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error
			if err == nil {
				earning = &existing
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if _, err := lockUser(tx, userID); err != nil {
			return err
		}
		e := models.Earning{UserID: userID, Amount: amount, Source: source}
		if idempotencyKey != "" {
			e.IdempotencyKey = &idempotencyKey
		}
		if err := tx.Create(&e).Error; err != nil {
			// Two in-flight requests with the same key can both miss the
			// pre-check; the loser of the insert race returns the winner's
			// row, which is visible once the user lock is acquired.
			if idempotencyKey != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
				var existing models.Earning
				if ferr := tx.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error; ferr != nil {
					return ferr
				}
				earning = &existing
				return nil
			}
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{
				"balance":        gorm.Expr("balance + ?", amount),
				"today_earnings": gorm.Expr("today_earnings + ?", amount),
			}).Error; err != nil {
			return err
		}
		earning = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return earning, nil
}

// RequestWithdrawal checks funds and debits the balance while the user row
// is locked, so two near-exhausting requests can never both pass the check.
func (s *LedgerService) RequestWithdrawal(ctx context.Context, userID uint64, amount float64, method, account string) (*models.Withdrawal, error) {
	var withdrawal *models.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := lockUser(tx, userID)
		if err != nil {
			return err
		}
		if user.Balance < amount {
			return ErrInsufficientBalance
		}
		w := models.Withdrawal{
			UserID:    userID,
			Amount:    amount,
			Method:    method,
			Account:   account,
			Reference: "wd-" + uuid.NewString(),
			Status:    domain.WithdrawalStatusPending,
		}
		if err := tx.Create(&w).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("balance", gorm.Expr("balance - ?", amount)).Error; err != nil {
			return err
		}
		withdrawal = &w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// RecordReferral stores the (referee, referrer) pair and pays the referrer
// the current referral reward, with a matching earning row. All four
// effects commit or roll back together.
func (s *LedgerService) RecordReferral(ctx context.Context, userID, referrerID uint64) (*models.Referral, float64, error) {
	var (
		referral *models.Referral
		reward   float64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ref := models.Referral{UserID: userID, ReferrerID: referrerID}
		if err := tx.Create(&ref).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrReferralExists
			}
			return err
		}
		var cfg models.RewardConfig
		if err := tx.Order("id DESC").First(&cfg).Error; err != nil {
			return err
		}
		if _, err := lockUser(tx, referrerID); err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", referrerID).
			Update("balance", gorm.Expr("balance + ?", cfg.ReferralReward)).Error; err != nil {
			return err
		}
		e := models.Earning{
			UserID: referrerID,
			Amount: cfg.ReferralReward,
			Source: fmt.Sprintf("Referral: User %d", userID),
		}
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		referral = &ref
		reward = cfg.ReferralReward
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return referral, reward, nil
}

// ResolveWithdrawal moves a pending withdrawal to completed or rejected.
// A rejection refunds the held amount in the same transaction.
func (s *LedgerService) ResolveWithdrawal(ctx context.Context, id uint64, status string) (*models.Withdrawal, error) {
	var withdrawal *models.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w models.Withdrawal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&w, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}
		if w.Status != domain.WithdrawalStatusPending {
			return ErrWithdrawalNotPending
		}
		now := time.Now()
		if err := tx.Model(&w).Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": now,
		}).Error; err != nil {
			return err
		}
		if status == domain.WithdrawalStatusRejected {
			if _, err := lockUser(tx, w.UserID); err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("id = ?", w.UserID).
				Update("balance", gorm.Expr("balance + ?", w.Amount)).Error; err != nil {
				return err
			}
		}
		w.Status = status
		w.ResolvedAt = &now
		withdrawal = &w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}
