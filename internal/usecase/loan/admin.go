package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bankloan-backend/internal/domain/contract"
	"bankloan-backend/internal/domain/errs"
	"bankloan-backend/internal/domain/notification"
	"bankloan-backend/internal/domain/outbox"
	"bankloan-backend/internal/domain/uow"
	"bankloan-backend/internal/domain/wallet"
	"bankloan-backend/internal/infrastructure/metrics"
	"bankloan-backend/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// List pages over every contract with the borrower's name and phone attached.
func (u *Usecase) List(ctx context.Context, page, limit int, search string) (*PageDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	p, err := u.contracts.List(ctx, page, limit, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := &PageDTO{
		Items:      make([]AdminContractDTO, 0, len(p.Items)),
		Total:      p.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((p.Total + int64(limit) - 1) / int64(limit)),
	}
	for i := range p.Items {
		row := &p.Items[i]
		out.Items = append(out.Items, AdminContractDTO{
			ContractDTO:   *ToDTO(&row.Contract),
			BorrowerName:  row.BorrowerName,
			BorrowerPhone: row.BorrowerPhone,
		})
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, contractID string, in UpdateInput) (*ContractDTO, error) {
	if in.LoanAmount != nil && !in.LoanAmount.IsPositive() {
		return nil, errs.InvalidInput("Số tiền vay phải lớn hơn 0")
	}
	if in.LoanTerm != nil && *in.LoanTerm <= 0 {
		return nil, errs.InvalidInput("Thời hạn vay phải lớn hơn 0")
	}
	var out *ContractDTO
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *contract.Contract) error {
		if in.LoanAmount != nil {
			c.LoanAmount = *in.LoanAmount
		}
		if in.LoanTerm != nil {
			c.LoanTerm = *in.LoanTerm
		}
		if in.BankName != nil {
			c.BankName = strings.TrimSpace(*in.BankName)
		}
		if in.ContractContent != nil {
			c.ContractContent = *in.ContractContent
		}
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}
		out = ToDTO(c)
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return out, nil
}

// SetStatus moves a contract to status from any status. Every side effect
// (notification, wallet reset on rejection, outbox event) commits in the same
// transaction as the status write. Setting the current status again is a no-op.
func (u *Usecase) SetStatus(ctx context.Context, contractID string, status contract.Status) (*StatusResult, error) {
	if !status.Valid() {
		return nil, contract.ErrInvalidStatus
	}

	res := &StatusResult{}
	err := u.uow.WithinContractTx(ctx, contractID, func(r uow.Repos, c *contract.Contract) error {
		if c.Status == status {
			res.Contract = ToDTO(c)
			return nil
		}
		now := u.now().UTC()
		ev := statusChangedEvent{ContractID: c.ContractID, UserID: c.UserID, From: c.Status, To: status, ChangedAt: now}

		c.Status = status
		c.StatusUpdatedAt = now
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}

		if n := statusNotification(c); n != nil {
			if err := r.Notifications.Create(ctx, n); err != nil {
				return err
			}
		}
		if status == contract.StatusRejected {
			reset, err := u.resetBalance(ctx, r, c)
			if err != nil {
				return err
			}
			ev.BalanceReset = reset
		}

		e, err := newEvent(outbox.TopicLoanStatusChanged, c.ContractID, ev)
		if err != nil {
			return err
		}
		if err := r.Outbox.Create(ctx, e); err != nil {
			return err
		}
		res.Contract = ToDTO(c)
		res.Changed = true
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}

	if res.Changed {
		metrics.LoanStatusChanges.WithLabelValues(string(status)).Inc()
		u.log.Info("loan status changed",
			zap.String("contract_id", contractID), zap.String("status", string(status)))
	}
	return res, nil
}

// resetBalance zeroes the borrower's balance and logs the reset. It returns
// the previous balance, or nil when the borrower row is gone.
func (u *Usecase) resetBalance(ctx context.Context, r uow.Repos, c *contract.Contract) (*decimal.Decimal, error) {
	usr, err := r.Users.GetByUserIDForUpdate(ctx, c.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u.log.Warn("rejected contract has no borrower; skipping balance reset",
			zap.String("contract_id", c.ContractID), zap.String("user_id", c.UserID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	prev := usr.Balance
	usr.Balance = decimal.Zero
	if err := r.Users.Save(ctx, usr); err != nil {
		return nil, err
	}
	err = r.Transactions.Create(ctx, &wallet.Transaction{
		TransactionID: id.NewULID(),
		UserID:        usr.UserID,
		ContractID:    c.ContractID,
		Type:          wallet.TxBalanceReset,
		Amount:        prev.Neg(),
		BalanceAfter:  decimal.Zero,
		Description:   fmt.Sprintf("Đặt lại số dư do khoản vay %s bị từ chối", c.ContractID),
	})
	if err != nil {
		return nil, err
	}
	return &prev, nil
}

func statusNotification(c *contract.Contract) *notification.Notification {
	n := &notification.Notification{
		NotificationID: id.NewULID(),
		UserID:         c.UserID,
		ContractID:     c.ContractID,
	}
	switch c.Status {
	case contract.StatusApproved:
		n.Kind = notification.KindLoanApproved
		n.Title = "Khoản vay đã được phê duyệt"
		n.Message = fmt.Sprintf("Hợp đồng %s của bạn đã được phê duyệt.", c.ContractID)
	case contract.StatusRejected:
		n.Kind = notification.KindLoanRejected
		n.Title = "Khoản vay bị từ chối"
		n.Message = fmt.Sprintf("Hợp đồng %s của bạn đã bị từ chối. Số dư ví đã được đặt lại về 0.", c.ContractID)
	default:
		return nil
	}
	return n
}
